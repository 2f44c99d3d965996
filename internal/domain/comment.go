package domain

import "time"

// DeletedCommentContent replaces the body of a deleted comment that still has replies.
const DeletedCommentContent = "[This comment has been deleted]"

const (
	MinRating = 1
	MaxRating = 5
)

type Comment struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event"`
	Author     UserRef    `json:"author"`
	ParentID   *string    `json:"parentComment"`
	Content    string     `json:"content"`
	Rating     *int       `json:"rating,omitempty"`
	Replies    []*Comment `json:"replies,omitempty"`
	ReplyCount int        `json:"replyCount"`
	Likes      []string   `json:"likes"`
	LikesCount int        `json:"likesCount"`
	IsEdited   bool       `json:"isEdited"`
	EditedAt   *time.Time `json:"editedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

func (c *Comment) HasReplies() bool {
	return c.ReplyCount > 0 || len(c.Replies) > 0
}

// CanDelete reports whether the actor may delete the comment.
func (c *Comment) CanDelete(a Actor) bool {
	return a.IsAdmin() || c.Author.ID == a.ID
}

type CommentRef struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (c *Comment) Ref() *CommentRef {
	return &CommentRef{ID: c.ID, Content: c.Content}
}

type CreateCommentInput struct {
	EventID  string
	Content  string
	Rating   *int
	ParentID *string
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// DeleteCommentResult tells whether the comment was removed or only blanked.
type DeleteCommentResult struct {
	Removed bool `json:"removed"`
}
