package domain

import "time"

type NotificationType string

const (
	NotificationEventApproved    NotificationType = "event_approved"
	NotificationEventRejected    NotificationType = "event_rejected"
	NotificationEventFavourite   NotificationType = "event_favourite"
	NotificationEventParticipant NotificationType = "event_participant"
	NotificationNewComment       NotificationType = "new_comment"
	NotificationCommentReply     NotificationType = "comment_reply"
	NotificationCommentLike      NotificationType = "comment_like"
	NotificationNewFollower      NotificationType = "new_follower"
	NotificationAdminMessage     NotificationType = "admin_message"
	NotificationSystem           NotificationType = "system"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationEventApproved, NotificationEventRejected, NotificationEventFavourite,
		NotificationEventParticipant, NotificationNewComment, NotificationCommentReply,
		NotificationCommentLike, NotificationNewFollower, NotificationAdminMessage,
		NotificationSystem:
		return true
	}
	return false
}

// NotificationData holds optional references resolved when the notification is read.
type NotificationData struct {
	EventID    string `json:"eventId,omitempty"`
	CommentID  string `json:"commentId,omitempty"`
	FromUserID string `json:"fromUserId,omitempty"`
}

type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Data        NotificationData `json:"data"`
	Read        bool             `json:"read"`
	ReadAt      *time.Time       `json:"readAt,omitempty"`
	ActionURL   string           `json:"actionUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// NotificationView is a notification with its data references populated.
// A reference that no longer resolves stays nil.
type NotificationView struct {
	*Notification
	Event    *EventRef   `json:"event"`
	Comment  *CommentRef `json:"comment"`
	FromUser *UserRef    `json:"fromUser"`
}

type NotificationFilter struct {
	UnreadOnly bool
	Page       Page
}

type BroadcastInput struct {
	Title     string
	Message   string
	ActionURL string
	Role      *Role
	UserIDs   []string
	SendEmail bool
}

type BroadcastResult struct {
	Recipients   int `json:"recipients"`
	Created      int `json:"created"`
	EmailsQueued int `json:"emailsQueued"`
}

// Delivery is a transactional message handed to the delivery collaborator.
type Delivery struct {
	Template  string
	Recipient *User
	Data      map[string]any
}

const (
	TemplateEventApproved = "event_approved"
	TemplateEventRejected = "event_rejected"
	TemplateBroadcast     = "broadcast"
)
