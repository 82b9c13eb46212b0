package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/fragora/fragora/internal/profile"
	"github.com/fragora/fragora/internal/version"
	"github.com/fragora/fragora/server"
	"github.com/fragora/fragora/store"
	"github.com/fragora/fragora/store/db"
)

const (
	greetingBanner = `fragora - perfume discovery backend`
)

var (
	rootCmd = &cobra.Command{
		Use:   "fragora",
		Short: "fragora is the perfume catalog and recommendation server",
		Run: func(_ *cobra.Command, _ []string) {
			instanceProfile := &profile.Profile{
				Mode:        viper.GetString("mode"),
				Addr:        viper.GetString("addr"),
				Port:        viper.GetInt("port"),
				Data:        viper.GetString("data"),
				Driver:      viper.GetString("driver"),
				DSN:         viper.GetString("dsn"),
				InstanceURL: viper.GetString("instance-url"),
				Version:     version.Version,
			}
			if err := instanceProfile.Validate(); err != nil {
				slog.Error("invalid configuration", slog.String("error", err.Error()))
				os.Exit(1)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			dbDriver, err := db.NewDBDriver(instanceProfile)
			if err != nil {
				slog.Error("failed to create db driver", slog.String("error", err.Error()))
				os.Exit(1)
			}

			storeInstance := store.New(dbDriver, instanceProfile)
			if err := storeInstance.Migrate(ctx); err != nil {
				slog.Error("failed to migrate database", slog.String("error", err.Error()))
				os.Exit(1)
			}

			s, err := server.NewServer(ctx, instanceProfile, storeInstance)
			if err != nil {
				slog.Error("failed to create server", slog.String("error", err.Error()))
				os.Exit(1)
			}

			fmt.Printf("%s v%s, mode %s, driver %s\n", greetingBanner, instanceProfile.Version, instanceProfile.Mode, instanceProfile.Driver)

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error {
				return s.Start(groupCtx)
			})
			group.Go(func() error {
				<-groupCtx.Done()
				s.Shutdown(context.Background())
				return nil
			})
			if err := group.Wait(); err != nil {
				slog.Error("server exited with error", slog.String("error", err.Error()))
				os.Exit(1)
			}
		},
	}
)

func init() {
	viper.SetDefault("mode", "demo")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8081)
	viper.SetDefault("data", "")
	viper.SetDefault("driver", "sqlite")

	rootCmd.PersistentFlags().String("mode", "demo", `mode of server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver, can be "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")
	rootCmd.PersistentFlags().String("instance-url", "", "the url of your fragora instance")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("fragora")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("failed to execute command", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
