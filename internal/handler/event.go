package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/handler/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/wb-go/wbf/ginext"
)

const maxImageSize = 10 << 20

var errImageTooLarge = errors.New("image exceeds 10MB")

// bindEvent accepts either a JSON body or a multipart form carrying the
// JSON document in the "event" field and an optional "image" file.
func (h *Handler) bindEvent(c *ginext.Context, req any) (*domain.Upload, io.Closer, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBindJSON(req); err != nil {
			h.bindError(c, err)
			return nil, nil, false
		}
		return nil, nil, true
	}

	if err := json.Unmarshal([]byte(c.PostForm("event")), req); err != nil {
		h.bindError(c, err)
		return nil, nil, false
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		h.bindError(c, err)
		return nil, nil, false
	}

	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, true
	}
	if err != nil {
		h.bindError(c, err)
		return nil, nil, false
	}
	upload, file, err := openUpload(fh)
	if err != nil {
		h.bindError(c, err)
		return nil, nil, false
	}
	return upload, file, true
}

func openUpload(fh *multipart.FileHeader) (*domain.Upload, multipart.File, error) {
	if fh.Size > maxImageSize {
		return nil, nil, errImageTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &domain.Upload{Filename: fh.Filename, Content: f}, f, nil
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	image, file, ok := h.bindEvent(c, &req)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	input := domain.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		DateTime:        req.DateTime,
		EndDateTime:     req.EndDateTime,
		Location:        req.Location.ToDomain(),
		DanceStyle:      domain.DanceStyle(req.DanceStyle),
		SkillLevel:      domain.SkillLevel(req.SkillLevel),
		EventType:       domain.EventType(req.EventType),
		Price:           req.Price,
		MaxParticipants: req.MaxParticipants,
		Tags:            req.Tags,
		Image:           image,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), currentActor(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	msg := "event created and submitted for review"
	if event.Status == domain.EventStatusApproved {
		msg = "event created"
	}
	h.respond(c, http.StatusCreated, msg, event)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), optionalActor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "", event)
}

func (h *Handler) ListEvents(c *ginext.Context) {
	var q dto.EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	filter := q.ToFilter()
	events, total, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondPage(c, events, filter.Page, total)
}

func (h *Handler) ListMyEvents(c *ginext.Context) {
	var q dto.EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	filter := q.ToFilter()
	events, total, err := h.eventService.ListMine(c.Request.Context(), currentActor(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondPage(c, events, filter.Page, total)
}

func (h *Handler) ListPendingEvents(c *ginext.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	page := toPage(q)
	events, total, err := h.eventService.ListPending(c.Request.Context(), currentActor(c), page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondPage(c, events, page, total)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	var req dto.UpdateEventRequest
	image, file, ok := h.bindEvent(c, &req)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	input := req.ToInput()
	input.Image = image

	event, err := h.eventService.UpdateEvent(c.Request.Context(), currentActor(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "event updated", event)
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), currentActor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "event deleted", nil)
}

func (h *Handler) SetFeatured(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	var req dto.FeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	event, err := h.eventService.SetFeatured(c.Request.Context(), currentActor(c), id, *req.Featured)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "", event)
}

// Moderation

func (h *Handler) UpdateEventStatus(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	event, err := h.moderationService.UpdateStatus(c.Request.Context(), currentActor(c), id, domain.StatusUpdateInput{
		Status:          domain.EventStatus(req.Status),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "event status updated to "+string(event.Status), event)
}

func (h *Handler) BulkApprove(c *ginext.Context) {
	var req dto.BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.moderationService.BulkApprove(c.Request.Context(), currentActor(c), req.EventIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "events approved", res)
}

// Participation

func (h *Handler) ToggleParticipation(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	joined, err := h.participationService.ToggleParticipation(c.Request.Context(), currentActor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	msg := "participation cancelled"
	if joined {
		msg = "registered for the event"
	}
	h.respond(c, http.StatusOK, msg, dto.ParticipationResponse{Participating: joined})
}

func (h *Handler) ToggleFavourite(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	added, err := h.participationService.ToggleFavourite(c.Request.Context(), currentActor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	msg := "removed from favourites"
	if added {
		msg = "added to favourites"
	}
	h.respond(c, http.StatusOK, msg, dto.FavouriteResponse{Favourite: added})
}

func (h *Handler) ListParticipants(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	participants, err := h.eventService.ListParticipants(c.Request.Context(), optionalActor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "", participants)
}

// Gallery

func (h *Handler) AddGalleryImage(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		h.fail(c, http.StatusBadRequest, "validation failed", []domain.FieldError{{Field: "image", Message: "is required"}})
		return
	}
	upload, file, err := openUpload(fh)
	if err != nil {
		h.fail(c, http.StatusBadRequest, "validation failed", []domain.FieldError{{Field: "image", Message: err.Error()}})
		return
	}
	defer file.Close()

	caption := strings.TrimSpace(c.PostForm("caption"))
	image, err := h.eventService.AddGalleryImage(c.Request.Context(), currentActor(c), id, *upload, caption)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "image uploaded", image)
}

func (h *Handler) DeleteGalleryImage(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}
	imageID, ok := idParam(c, "imageId")
	if !ok {
		h.invalidID(c, "image")
		return
	}

	if err := h.eventService.DeleteGalleryImage(c.Request.Context(), currentActor(c), id, imageID); err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "image deleted", nil)
}
