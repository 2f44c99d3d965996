package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

type NotificationPreferences struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

type Preferences struct {
	DanceStyles   []DanceStyle            `json:"danceStyles"`
	SkillLevel    SkillLevel              `json:"skillLevel"`
	Notifications NotificationPreferences `json:"notifications"`
}

type User struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	PasswordHash   string      `json:"-"`
	Role           Role        `json:"role"`
	IsVerified     bool        `json:"isVerified"`
	Bio            string      `json:"bio"`
	City           string      `json:"city"`
	AvatarURL      string      `json:"avatar"`
	TelegramChatID *int64      `json:"telegramChatId,omitempty"`
	Preferences    Preferences `json:"preferences"`
	FollowersCount int         `json:"followersCount"`
	FollowingCount int         `json:"followingCount"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// WantsEmail reports whether transactional email may be sent to the user.
func (u *User) WantsEmail() bool {
	return u.Email != "" && u.Preferences.Notifications.Email
}

func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Name: u.Name, Role: u.Role}
}

// Actor is the authenticated caller of a workflow operation.
type Actor struct {
	ID   string
	Name string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// UserRef is the compact form used when populating references.
type UserRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar"`
}

func (u *User) Ref() *UserRef {
	return &UserRef{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Name           *string
	Bio            *string
	City           *string
	AvatarURL      *string
	TelegramChatID *int64
	DanceStyles    []DanceStyle
	SkillLevel     *SkillLevel
	EmailNotify    *bool
	PushNotify     *bool
}

type UserFilter struct {
	Role  *Role
	Query string
	Page  Page
}

type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

type AuthResult struct {
	User   *User     `json:"user"`
	Tokens TokenPair `json:"tokens"`
}
