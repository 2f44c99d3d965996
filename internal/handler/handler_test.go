package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	hmocks "github.com/Musicista92/progettofinalecapstone-sub000/internal/handler/mocks"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminUser     = &domain.User{ID: uuid.NewString(), Name: "Ada", Role: domain.RoleAdmin}
	organizerUser = &domain.User{ID: uuid.NewString(), Name: "Oscar", Role: domain.RoleOrganizer}
	plainUser     = &domain.User{ID: uuid.NewString(), Name: "Lucia", Role: domain.RoleUser}
)

// tokenAuth resolves fixed bearer tokens to users.
type tokenAuth map[string]*domain.User

func (a tokenAuth) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if u, ok := a[token]; ok {
		return u, nil
	}
	return nil, domain.ErrInvalidToken
}

type services struct {
	auth          *hmocks.MockAuthSvc
	event         *hmocks.MockEventSvc
	moderation    *hmocks.MockModerationSvc
	participation *hmocks.MockParticipationSvc
	comment       *hmocks.MockCommentSvc
	notification  *hmocks.MockNotificationSvc
	user          *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (services, http.Handler) {
	t.Helper()
	s := services{
		auth:          hmocks.NewMockAuthSvc(t),
		event:         hmocks.NewMockEventSvc(t),
		moderation:    hmocks.NewMockModerationSvc(t),
		participation: hmocks.NewMockParticipationSvc(t),
		comment:       hmocks.NewMockCommentSvc(t),
		notification:  hmocks.NewMockNotificationSvc(t),
		user:          hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(s.auth, s.event, s.moderation, s.participation, s.comment, s.notification, s.user)
	UseJSONFieldNames()

	authn := tokenAuth{"admin": adminUser, "organizer": organizerUser, "user": plainUser}
	r := router.InitRouter("test", h, authn, nil)

	return s, r
}

type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Errors     []domain.FieldError `json:"errors"`
	Pagination *struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Total int `json:"total"`
		Pages int `json:"pages"`
	} `json:"pagination"`
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func fieldNames(errs []domain.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func eventBody(start time.Time) map[string]any {
	return map[string]any{
		"title":       "Salsa Night",
		"description": "Social dancing until late",
		"dateTime":    start.Format(time.RFC3339),
		"location":    map[string]any{"venue": "Club", "address": "Via Roma 1", "city": "Milano"},
		"danceStyle":  "salsa",
		"skillLevel":  "all",
		"eventType":   "party",
		"price":       10,
	}
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	s, r := setupRouter(t)

	s.auth.EXPECT().
		Register(mock.Anything, domain.RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "s3cretpass", Role: domain.RoleOrganizer,
		}).
		Return(&domain.AuthResult{User: &domain.User{ID: "u1"}, Tokens: domain.TokenPair{AccessToken: "a"}}, nil)

	w, env := do(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Maria", "email": "maria@example.com", "password": "s3cretpass", "role": "organizer",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "registration successful", env.Message)
}

func TestHandler_Register_Validation(t *testing.T) {
	_, r := setupRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Maria", "email": "nope", "password": "short", "role": "admin",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.ElementsMatch(t, []string{"email", "password", "role"}, fieldNames(env.Errors))
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	s, r := setupRouter(t)
	s.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w, env := do(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Maria", "email": "maria@example.com", "password": "s3cretpass",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email is already registered", env.Message)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	s, r := setupRouter(t)
	s.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	w, env := do(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "maria@example.com", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid email or password", env.Message)
}

func TestHandler_Me(t *testing.T) {
	_, r := setupRouter(t)

	w, _ := do(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/auth/me", "expired", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := do(t, r, http.MethodGet, "/api/auth/me", "user", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.User
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, plainUser.ID, got.ID)
}

// --- Events ---

func TestHandler_CreateEvent_Roles(t *testing.T) {
	s, r := setupRouter(t)
	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	w, _ := do(t, r, http.MethodPost, "/api/events", "", eventBody(start))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/events", "user", eventBody(start))
	assert.Equal(t, http.StatusForbidden, w.Code)

	s.event.EXPECT().
		CreateEvent(mock.Anything, organizerUser.Actor(), mock.MatchedBy(func(in domain.CreateEventInput) bool {
			return in.Title == "Salsa Night" && in.DateTime.Equal(start) &&
				in.Location.City == "Milano" && in.DanceStyle == domain.DanceSalsa && in.Image == nil
		})).
		Return(&domain.Event{ID: "e1", Status: domain.EventStatusPending}, nil)

	w, env := do(t, r, http.MethodPost, "/api/events", "organizer", eventBody(start))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "event created and submitted for review", env.Message)
}

func TestHandler_CreateEvent_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	body := eventBody(time.Now().Add(time.Hour))
	delete(body, "title")
	body["location"] = map[string]any{"venue": "Club"}

	w, env := do(t, r, http.MethodPost, "/api/events", "organizer", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, fieldNames(env.Errors), "title")
	assert.Contains(t, fieldNames(env.Errors), "location.city")
}

func TestHandler_CreateEvent_Multipart(t *testing.T) {
	s, r := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	doc, err := json.Marshal(eventBody(time.Now().Add(time.Hour)))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("event", string(doc)))
	part, err := mw.CreateFormFile("image", "poster.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	s.event.EXPECT().
		CreateEvent(mock.Anything, adminUser.Actor(), mock.MatchedBy(func(in domain.CreateEventInput) bool {
			return in.Image != nil && in.Image.Filename == "poster.jpg"
		})).
		Return(&domain.Event{ID: "e1", Status: domain.EventStatusApproved}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/events", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer admin")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"event created"`)
}

func TestHandler_GetEvent(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.NewString()

	w, env := do(t, r, http.MethodGet, "/api/events/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid event id", env.Message)

	s.event.EXPECT().GetEvent(mock.Anything, (*domain.Actor)(nil), id).Return(nil, domain.ErrEventNotFound).Once()
	w, env = do(t, r, http.MethodGet, "/api/events/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "event not found", env.Message)

	owner := organizerUser.Actor()
	s.event.EXPECT().GetEvent(mock.Anything, &owner, id).
		Return(&domain.Event{ID: id, Status: domain.EventStatusPending}, nil).Once()
	w, _ = do(t, r, http.MethodGet, "/api/events/"+id, "organizer", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListEvents_Pagination(t *testing.T) {
	s, r := setupRouter(t)

	s.event.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
			return f.City == "Milano" && f.DanceStyle == domain.DanceBachata && f.Page == domain.Page{Number: 2, Limit: 5}
		})).
		Return([]*domain.Event{{ID: "e6"}}, 11, nil)

	w, env := do(t, r, http.MethodGet, "/api/events?city=Milano&danceStyle=bachata&page=2&limit=5", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 11, env.Pagination.Total)
	assert.Equal(t, 3, env.Pagination.Pages)

	w, _ = do(t, r, http.MethodGet, "/api/events?limit=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_NotOwner(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.NewString()

	s.event.EXPECT().UpdateEvent(mock.Anything, plainUser.Actor(), id, mock.Anything).Return(nil, domain.ErrNotEventOwner)

	w, env := do(t, r, http.MethodPut, "/api/events/"+id, "user", map[string]any{"title": "Mine now"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "only the organizer or an admin can modify this event", env.Message)
}

func TestHandler_UpdateEventStatus(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.NewString()

	w, _ := do(t, r, http.MethodPut, "/api/events/"+id+"/status", "organizer", map[string]any{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := do(t, r, http.MethodPut, "/api/events/"+id+"/status", "admin", map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"status"}, fieldNames(env.Errors))

	s.moderation.EXPECT().
		UpdateStatus(mock.Anything, adminUser.Actor(), id, domain.StatusUpdateInput{
			Status: domain.EventStatusRejected, RejectionReason: "Missing address",
		}).
		Return(&domain.Event{ID: id, Status: domain.EventStatusRejected}, nil)

	w, env = do(t, r, http.MethodPut, "/api/events/"+id+"/status", "admin", map[string]any{
		"status": "rejected", "rejectionReason": "Missing address",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "event status updated to rejected", env.Message)
}

func TestHandler_BulkApprove(t *testing.T) {
	s, r := setupRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/events/bulk-approve", "admin", map[string]any{"eventIds": []string{"x"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"eventIds[0]"}, fieldNames(env.Errors))

	ids := []string{uuid.NewString(), uuid.NewString()}
	s.moderation.EXPECT().BulkApprove(mock.Anything, adminUser.Actor(), ids).
		Return(domain.BulkApproveResult{Requested: 2, Approved: 2, ApprovedIDs: ids}, nil)

	w, env = do(t, r, http.MethodPost, "/api/events/bulk-approve", "admin", map[string]any{"eventIds": ids})
	require.Equal(t, http.StatusOK, w.Code)
	var res domain.BulkApproveResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 2, res.Approved)
}

func TestHandler_ToggleParticipation(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.NewString()

	s.participation.EXPECT().ToggleParticipation(mock.Anything, plainUser.Actor(), id).Return(true, nil).Once()
	w, env := do(t, r, http.MethodPost, "/api/events/"+id+"/participate", "user", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isParticipating":true}`, string(env.Data))

	s.participation.EXPECT().ToggleParticipation(mock.Anything, plainUser.Actor(), id).Return(false, domain.ErrEventFull).Once()
	w, env = do(t, r, http.MethodPost, "/api/events/"+id+"/participate", "user", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "event has reached its maximum capacity", env.Message)
}

func TestHandler_AddGalleryImage_RequiresFile(t *testing.T) {
	_, r := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("caption", "hello"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/events/"+uuid.NewString()+"/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer user")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"image"`)
}

// --- Comments ---

func TestHandler_AddComment(t *testing.T) {
	s, r := setupRouter(t)
	eventID := uuid.NewString()
	parent := uuid.NewString()

	s.comment.EXPECT().
		AddComment(mock.Anything, plainUser.Actor(), domain.CreateCommentInput{
			EventID: eventID, Content: "Me too!", ParentID: &parent,
		}).
		Return(&domain.Comment{ID: "c1", Content: "Me too!"}, nil)

	w, _ := do(t, r, http.MethodPost, "/api/events/"+eventID+"/comments", "user", map[string]any{
		"content": "Me too!", "parentComment": parent,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, env := do(t, r, http.MethodPost, "/api/events/"+eventID+"/comments", "user", map[string]any{
		"content": "Great", "rating": 9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"rating"}, fieldNames(env.Errors))
}

func TestHandler_DeleteComment_ServiceFailure(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.NewString()

	s.comment.EXPECT().DeleteComment(mock.Anything, plainUser.Actor(), id).
		Return(domain.DeleteCommentResult{}, errors.New("connection reset"))

	w, env := do(t, r, http.MethodDelete, "/api/comments/"+id, "user", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", env.Message)
}

// --- Notifications ---

func TestHandler_UnreadCount(t *testing.T) {
	s, r := setupRouter(t)
	s.notification.EXPECT().UnreadCount(mock.Anything, plainUser.Actor()).Return(4, nil)

	w, env := do(t, r, http.MethodGet, "/api/notifications/unread-count", "user", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":4}`, string(env.Data))
}

func TestHandler_MarkNotificationRead_OtherRecipient(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.NewString()
	s.notification.EXPECT().MarkRead(mock.Anything, plainUser.Actor(), id).Return(nil, domain.ErrNotRecipient)

	w, _ := do(t, r, http.MethodPut, "/api/notifications/"+id+"/read", "user", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Broadcast(t *testing.T) {
	s, r := setupRouter(t)

	w, _ := do(t, r, http.MethodPost, "/api/notifications/broadcast", "organizer", map[string]any{"title": "x", "message": "y"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	role := domain.RoleOrganizer
	s.notification.EXPECT().
		Broadcast(mock.Anything, adminUser.Actor(), domain.BroadcastInput{
			Title: "Festival season", Message: "Submit now", Role: &role, SendEmail: true,
		}).
		Return(domain.BroadcastResult{Recipients: 12, Created: 12, EmailsQueued: 9}, nil)

	w, env := do(t, r, http.MethodPost, "/api/notifications/broadcast", "admin", map[string]any{
		"title": "Festival season", "message": "Submit now", "role": "organizer", "sendEmail": true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"recipients":12,"created":12,"emailsQueued":9}`, string(env.Data))
}

// --- Users ---

func TestHandler_ToggleFollow_Self(t *testing.T) {
	s, r := setupRouter(t)
	s.user.EXPECT().ToggleFollow(mock.Anything, plainUser.Actor(), plainUser.ID).Return(false, domain.ErrSelfFollow)

	w, env := do(t, r, http.MethodPost, "/api/users/"+plainUser.ID+"/follow", "user", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "you cannot follow yourself", env.Message)
}

func TestHandler_GetUser_HidesPrivateFields(t *testing.T) {
	s, r := setupRouter(t)
	u := &domain.User{ID: organizerUser.ID, Name: "Oscar", Email: "oscar@example.com", Role: domain.RoleOrganizer}
	s.user.EXPECT().GetByID(mock.Anything, u.ID).Return(u, nil)

	w, env := do(t, r, http.MethodGet, "/api/users/"+u.ID, "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), "oscar@example.com")
}

func TestHandler_AdminRoutes(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.NewString()

	w, _ := do(t, r, http.MethodDelete, "/api/admin/users/"+id, "organizer", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	s.user.EXPECT().DeleteUser(mock.Anything, adminUser.Actor(), id).Return(nil)
	w, env := do(t, r, http.MethodDelete, "/api/admin/users/"+id, "admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user deleted", env.Message)

	s.user.EXPECT().UpdateRole(mock.Anything, adminUser.Actor(), id, domain.RoleOrganizer).
		Return(&domain.User{ID: id, Role: domain.RoleOrganizer}, nil)
	w, _ = do(t, r, http.MethodPut, "/api/admin/users/"+id+"/role", "admin", map[string]any{"role": "organizer"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Health(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
