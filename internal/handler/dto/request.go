package dto

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=user organizer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type NotificationPrefsRequest struct {
	Email *bool `json:"email"`
	Push  *bool `json:"push"`
}

type PreferencesRequest struct {
	DanceStyles   []string                  `json:"danceStyles" binding:"omitempty,dive,oneof=salsa bachata kizomba merengue reggaeton zouk cha-cha-cha mixed"`
	SkillLevel    *string                   `json:"skillLevel" binding:"omitempty,oneof=beginner intermediate advanced all"`
	Notifications *NotificationPrefsRequest `json:"notifications"`
}

type UpdateProfileRequest struct {
	Name           *string             `json:"name" binding:"omitempty,min=2,max=50"`
	Bio            *string             `json:"bio" binding:"omitempty,max=500"`
	City           *string             `json:"city" binding:"omitempty,max=100"`
	Avatar         *string             `json:"avatar" binding:"omitempty,url"`
	TelegramChatID *int64              `json:"telegramChatId"`
	Preferences    *PreferencesRequest `json:"preferences"`
}

type LocationRequest struct {
	Venue     string   `json:"venue" binding:"required,max=200"`
	Address   string   `json:"address" binding:"required,max=300"`
	City      string   `json:"city" binding:"required,max=100"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
}

type CreateEventRequest struct {
	Title           string          `json:"title" binding:"required,max=100"`
	Description     string          `json:"description" binding:"required,max=2000"`
	DateTime        time.Time       `json:"dateTime" binding:"required"`
	EndDateTime     *time.Time      `json:"endDateTime"`
	Location        LocationRequest `json:"location" binding:"required"`
	DanceStyle      string          `json:"danceStyle" binding:"required"`
	SkillLevel      string          `json:"skillLevel" binding:"required"`
	EventType       string          `json:"eventType" binding:"required"`
	Price           float64         `json:"price" binding:"gte=0"`
	MaxParticipants *int            `json:"maxParticipants" binding:"omitempty,gte=1"`
	Tags            []string        `json:"tags" binding:"omitempty,max=10,dive,max=30"`
}

type UpdateEventRequest struct {
	Title           *string          `json:"title" binding:"omitempty,max=100"`
	Description     *string          `json:"description" binding:"omitempty,max=2000"`
	DateTime        *time.Time       `json:"dateTime"`
	EndDateTime     *time.Time       `json:"endDateTime"`
	Location        *LocationRequest `json:"location"`
	DanceStyle      *string          `json:"danceStyle"`
	SkillLevel      *string          `json:"skillLevel"`
	EventType       *string          `json:"eventType"`
	Price           *float64         `json:"price" binding:"omitempty,gte=0"`
	MaxParticipants *int             `json:"maxParticipants" binding:"omitempty,gte=1"`
	Tags            []string         `json:"tags" binding:"omitempty,max=10,dive,max=30"`
}

type EventListQuery struct {
	Page       int        `form:"page" binding:"omitempty,gte=1"`
	Limit      int        `form:"limit" binding:"omitempty,gte=1,lte=50"`
	City       string     `form:"city"`
	DanceStyle string     `form:"danceStyle"`
	SkillLevel string     `form:"skillLevel"`
	EventType  string     `form:"eventType"`
	Status     string     `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled completed"`
	From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Query      string     `form:"q" binding:"omitempty,max=100"`
	Featured   *bool      `form:"featured"`
}

type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,gte=1"`
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=50"`
}

type NotificationListQuery struct {
	PageQuery
	Unread bool `form:"unread"`
}

type UserListQuery struct {
	PageQuery
	Role  string `form:"role" binding:"omitempty,oneof=user organizer admin"`
	Query string `form:"q" binding:"omitempty,max=100"`
}

type StatusUpdateRequest struct {
	Status          string `json:"status" binding:"required,oneof=pending approved rejected cancelled completed"`
	RejectionReason string `json:"rejectionReason" binding:"omitempty,max=500"`
}

type BulkApproveRequest struct {
	EventIDs []string `json:"eventIds" binding:"required,min=1,max=100,dive,uuid"`
}

type FeaturedRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

type CommentRequest struct {
	Content       string  `json:"content" binding:"required,max=1000"`
	Rating        *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	ParentComment *string `json:"parentComment" binding:"omitempty,uuid"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type BroadcastRequest struct {
	Title     string   `json:"title" binding:"required,max=100"`
	Message   string   `json:"message" binding:"required,max=1000"`
	ActionURL string   `json:"actionUrl" binding:"omitempty,max=500"`
	Role      string   `json:"role" binding:"omitempty,oneof=user organizer admin"`
	UserIDs   []string `json:"userIds" binding:"omitempty,max=1000,dive,uuid"`
	SendEmail bool     `json:"sendEmail"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user organizer admin"`
}
