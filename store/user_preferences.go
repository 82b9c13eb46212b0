package store

// PreferenceAction is a user gesture on a single perfume.
type PreferenceAction string

const (
	ActionLike      PreferenceAction = "like"
	ActionDislike   PreferenceAction = "dislike"
	ActionFavorite  PreferenceAction = "favorite"
	ActionWantToTry PreferenceAction = "wantToTry"
	ActionHaveIt    PreferenceAction = "haveIt"
)

// IsValid reports whether the action is one of the five known gestures.
func (a PreferenceAction) IsValid() bool {
	switch a {
	case ActionLike, ActionDislike, ActionFavorite, ActionWantToTry, ActionHaveIt:
		return true
	}
	return false
}

// UserPreferences holds the five perfume-id lists kept per user.
// Likes and dislikes are mutually exclusive for a given perfume id; the
// preference service enforces that, not the store.
type UserPreferences struct {
	UserID    string
	Likes     []string
	Dislikes  []string
	Favorites []string
	WantToTry []string
	HaveIt    []string
	CreatedTs int64
	UpdatedTs int64
}

// NewUserPreferences returns an empty preference record for the given user.
// Records are created lazily on first access.
func NewUserPreferences(userID string) *UserPreferences {
	return &UserPreferences{
		UserID:    userID,
		Likes:     []string{},
		Dislikes:  []string{},
		Favorites: []string{},
		WantToTry: []string{},
		HaveIt:    []string{},
	}
}

// FindUserPreferences specifies the conditions for finding user preferences.
type FindUserPreferences struct {
	UserID *string
}

// UpsertUserPreferences specifies the data for upserting user preferences.
type UpsertUserPreferences struct {
	UserID    string
	Likes     []string
	Dislikes  []string
	Favorites []string
	WantToTry []string
	HaveIt    []string
}
