package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrEventNotFound        = fmt.Errorf("event %w", ErrNotFound)
	ErrCommentNotFound      = fmt.Errorf("comment %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
	ErrImageNotFound        = fmt.Errorf("image %w", ErrNotFound)
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
)

var (
	ErrNotEventOwner       = fmt.Errorf("%w: only the organizer or an admin can modify this event", ErrForbidden)
	ErrNotCommentAuthor    = fmt.Errorf("%w: only the author can modify this comment", ErrForbidden)
	ErrNotRecipient        = fmt.Errorf("%w: notification belongs to another user", ErrForbidden)
	ErrInsufficientRole    = fmt.Errorf("%w: insufficient role", ErrForbidden)
	ErrGalleryNotPermitted = fmt.Errorf("%w: only the organizer, an admin or a participant can upload photos", ErrForbidden)
)

var (
	ErrEventNotApproved = fmt.Errorf("%w: event is not open for participation", ErrValidation)
	ErrEventInPast      = fmt.Errorf("%w: event has already taken place", ErrValidation)
	ErrEventFull        = fmt.Errorf("%w: event has reached its maximum capacity", ErrValidation)
	ErrNotFavouritable  = fmt.Errorf("%w: only approved events can be added to favourites", ErrValidation)
	ErrOwnEvent         = fmt.Errorf("%w: you cannot add your own event to favourites", ErrValidation)
	ErrSelfFollow       = fmt.Errorf("%w: you cannot follow yourself", ErrValidation)
	ErrCommentDepth     = fmt.Errorf("%w: replies cannot be nested further", ErrValidation)
	ErrRatingNotAllowed = fmt.Errorf("%w: ratings are only allowed on top-level comments of started events", ErrValidation)
	ErrStorageDisabled  = fmt.Errorf("%w: image uploads are not configured", ErrValidation)
)

var (
	ErrEmailTaken = fmt.Errorf("%w: email is already registered", ErrConflict)
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures and unwraps to ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Fields[0].Field, e.Fields[0].Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no field failed, so callers can `return v.OrNil()`.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
