// Package version holds the server version string.
package version

// Version is the current release of the server. Bump on release.
var Version = "0.3.1"
