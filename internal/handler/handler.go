package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/handler/dto"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/middleware"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
}

type EventSvc interface {
	CreateEvent(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, actor *domain.Actor, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, int, error)
	ListMine(ctx context.Context, actor domain.Actor, filter domain.EventFilter) ([]*domain.Event, int, error)
	ListPending(ctx context.Context, actor domain.Actor, page domain.Page) ([]*domain.Event, int, error)
	UpdateEvent(ctx context.Context, actor domain.Actor, id string, in domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, actor domain.Actor, id string) error
	SetFeatured(ctx context.Context, actor domain.Actor, id string, featured bool) (*domain.Event, error)
	AddGalleryImage(ctx context.Context, actor domain.Actor, eventID string, file domain.Upload, caption string) (*domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, actor domain.Actor, eventID, imageID string) error
	ListParticipants(ctx context.Context, actor *domain.Actor, eventID string) ([]domain.Participant, error)
}

type ModerationSvc interface {
	UpdateStatus(ctx context.Context, actor domain.Actor, eventID string, in domain.StatusUpdateInput) (*domain.Event, error)
	BulkApprove(ctx context.Context, actor domain.Actor, ids []string) (domain.BulkApproveResult, error)
}

type ParticipationSvc interface {
	ToggleParticipation(ctx context.Context, actor domain.Actor, eventID string) (bool, error)
	ToggleFavourite(ctx context.Context, actor domain.Actor, eventID string) (bool, error)
	ListFavourites(ctx context.Context, actor domain.Actor, page domain.Page) ([]*domain.Event, int, error)
	ListJoined(ctx context.Context, actor domain.Actor, page domain.Page) ([]*domain.Event, int, error)
}

type CommentSvc interface {
	AddComment(ctx context.Context, actor domain.Actor, in domain.CreateCommentInput) (*domain.Comment, error)
	ListByEvent(ctx context.Context, actor *domain.Actor, eventID string, page domain.Page) ([]*domain.Comment, int, error)
	GetComment(ctx context.Context, id string) (*domain.Comment, error)
	UpdateComment(ctx context.Context, actor domain.Actor, id, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, actor domain.Actor, id string) (domain.DeleteCommentResult, error)
	ToggleLike(ctx context.Context, actor domain.Actor, id string) (domain.LikeResult, error)
}

type NotificationSvc interface {
	List(ctx context.Context, actor domain.Actor, filter domain.NotificationFilter) ([]*domain.NotificationView, int, error)
	UnreadCount(ctx context.Context, actor domain.Actor) (int, error)
	MarkRead(ctx context.Context, actor domain.Actor, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, actor domain.Actor) (int, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Broadcast(ctx context.Context, actor domain.Actor, in domain.BroadcastInput) (domain.BroadcastResult, error)
}

type UserSvc interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor domain.Actor, in domain.UpdateProfileInput) (*domain.User, error)
	ToggleFollow(ctx context.Context, actor domain.Actor, targetID string) (bool, error)
	ListFollowers(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error)
	ListFollowing(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error)
	List(ctx context.Context, actor domain.Actor, filter domain.UserFilter) ([]*domain.User, int, error)
	UpdateRole(ctx context.Context, actor domain.Actor, id string, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id string) error
}

type Handler struct {
	authService          AuthSvc
	eventService         EventSvc
	moderationService    ModerationSvc
	participationService ParticipationSvc
	commentService       CommentSvc
	notificationService  NotificationSvc
	userService          UserSvc
}

func NewHandler(
	authService AuthSvc,
	eventService EventSvc,
	moderationService ModerationSvc,
	participationService ParticipationSvc,
	commentService CommentSvc,
	notificationService NotificationSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		authService:          authService,
		eventService:         eventService,
		moderationService:    moderationService,
		participationService: participationService,
		commentService:       commentService,
		notificationService:  notificationService,
		userService:          userService,
	}
}

// UseJSONFieldNames makes binding errors report json/form names instead of Go field names.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}

func (h *Handler) respond(c *ginext.Context, status int, message string, data any) {
	c.JSON(status, dto.Response{Success: true, Message: message, Data: data})
}

func (h *Handler) respondPage(c *ginext.Context, data any, page domain.Page, total int) {
	c.JSON(http.StatusOK, dto.Response{
		Success:    true,
		Data:       data,
		Pagination: dto.NewPagination(page, total),
	})
}

func (h *Handler) fail(c *ginext.Context, status int, message string, fields []domain.FieldError) {
	c.JSON(status, dto.Response{Success: false, Message: message, Errors: fields})
}

// bindError answers a request whose body or query could not be bound.
func (h *Handler) bindError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		h.fail(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	h.fail(c, http.StatusBadRequest, "validation failed", fields)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid id"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items or characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max", "lte":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items or characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "latitude", "longitude":
		return "must be a valid " + fe.Tag()
	}
	return "is invalid"
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.fail(c, http.StatusBadRequest, "validation failed", verr.Fields)

	case errors.Is(err, domain.ErrNotFound):
		h.fail(c, http.StatusNotFound, err.Error(), nil)

	case errors.Is(err, domain.ErrUnauthorized):
		h.fail(c, http.StatusUnauthorized, publicMessage(err, domain.ErrUnauthorized), nil)

	case errors.Is(err, domain.ErrForbidden):
		h.fail(c, http.StatusForbidden, publicMessage(err, domain.ErrForbidden), nil)

	case errors.Is(err, domain.ErrValidation):
		h.fail(c, http.StatusBadRequest, publicMessage(err, domain.ErrValidation), nil)

	case errors.Is(err, domain.ErrConflict):
		h.fail(c, http.StatusConflict, publicMessage(err, domain.ErrConflict), nil)

	default:
		h.fail(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// publicMessage strips the category prefix from "<category>: <message>".
func publicMessage(err, category error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, category.Error()+": "); ok {
		return rest
	}
	return msg
}

func idParam(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func (h *Handler) invalidID(c *ginext.Context, what string) {
	h.fail(c, http.StatusBadRequest, "invalid "+what+" id", nil)
}

func currentActor(c *ginext.Context) domain.Actor {
	user, _ := middleware.CurrentUser(c)
	if user == nil {
		return domain.Actor{}
	}
	return user.Actor()
}

func optionalActor(c *ginext.Context) *domain.Actor {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil
	}
	a := user.Actor()
	return &a
}

func toPage(q dto.PageQuery) domain.Page {
	return domain.Page{Number: q.Page, Limit: q.Limit}.Normalize()
}
