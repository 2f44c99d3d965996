package dto

import (
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
)

// Response is the envelope returned by every endpoint.
type Response struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message,omitempty"`
	Data       any                 `json:"data,omitempty"`
	Errors     []domain.FieldError `json:"errors,omitempty"`
	Pagination *Pagination         `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func NewPagination(p domain.Page, total int) *Pagination {
	p = p.Normalize()
	pages := 0
	if total > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return &Pagination{Page: p.Number, Limit: p.Limit, Total: total, Pages: pages}
}

type ParticipationResponse struct {
	Participating bool `json:"isParticipating"`
}

type FavouriteResponse struct {
	Favourite bool `json:"isFavourite"`
}

type FollowResponse struct {
	Following bool `json:"isFollowing"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type ProfileResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Bio            string   `json:"bio"`
	City           string   `json:"city"`
	AvatarURL      string   `json:"avatar"`
	DanceStyles    []string `json:"danceStyles"`
	SkillLevel     string   `json:"skillLevel"`
	FollowersCount int      `json:"followersCount"`
	FollowingCount int      `json:"followingCount"`
	CreatedAt      string   `json:"createdAt"`
}

// ToProfileResponse is the public view of a user; email and settings are omitted.
func ToProfileResponse(u *domain.User) ProfileResponse {
	styles := make([]string, 0, len(u.Preferences.DanceStyles))
	for _, s := range u.Preferences.DanceStyles {
		styles = append(styles, string(s))
	}
	return ProfileResponse{
		ID:             u.ID,
		Name:           u.Name,
		Role:           string(u.Role),
		Bio:            u.Bio,
		City:           u.City,
		AvatarURL:      u.AvatarURL,
		DanceStyles:    styles,
		SkillLevel:     string(u.Preferences.SkillLevel),
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FollowingCount,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
