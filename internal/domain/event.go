package domain

import (
	"io"
	"time"
)

type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusApproved  EventStatus = "approved"
	EventStatusRejected  EventStatus = "rejected"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusRejected,
		EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions except an admin override.
func (s EventStatus) Terminal() bool {
	return s == EventStatusCancelled || s == EventStatusCompleted
}

// InitialStatus is the status a freshly created event starts in.
func InitialStatus(creator Role) EventStatus {
	if creator == RoleAdmin {
		return EventStatusApproved
	}
	return EventStatusPending
}

// StatusAfterEdit returns the status an event takes after a content edit:
// an organizer editing an approved event sends it back to moderation.
func StatusAfterEdit(current EventStatus, editor Role) EventStatus {
	if current == EventStatusApproved && editor != RoleAdmin {
		return EventStatusPending
	}
	return current
}

type DanceStyle string

const (
	DanceSalsa     DanceStyle = "salsa"
	DanceBachata   DanceStyle = "bachata"
	DanceKizomba   DanceStyle = "kizomba"
	DanceMerengue  DanceStyle = "merengue"
	DanceReggaeton DanceStyle = "reggaeton"
	DanceZouk      DanceStyle = "zouk"
	DanceChaCha    DanceStyle = "cha-cha-cha"
	DanceMixed     DanceStyle = "mixed"
)

func (d DanceStyle) Valid() bool {
	switch d {
	case DanceSalsa, DanceBachata, DanceKizomba, DanceMerengue,
		DanceReggaeton, DanceZouk, DanceChaCha, DanceMixed:
		return true
	}
	return false
}

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillAllLevels    SkillLevel = "all"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillAllLevels:
		return true
	}
	return false
}

type EventType string

const (
	EventTypeParty    EventType = "party"
	EventTypeWorkshop EventType = "workshop"
	EventTypeFestival EventType = "festival"
	EventTypeSocial   EventType = "social"
	EventTypeClass    EventType = "class"
	EventTypeCongress EventType = "congress"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeParty, EventTypeWorkshop, EventTypeFestival,
		EventTypeSocial, EventTypeClass, EventTypeCongress:
		return true
	}
	return false
}

type Location struct {
	Venue     string   `json:"venue"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type ParticipantStatus string

const (
	ParticipantRegistered ParticipantStatus = "registered"
	ParticipantAttended   ParticipantStatus = "attended"
	ParticipantCancelled  ParticipantStatus = "cancelled"
)

type Participant struct {
	User         UserRef           `json:"user"`
	RegisteredAt time.Time         `json:"registeredAt"`
	Status       ParticipantStatus `json:"status"`
}

type GalleryImage struct {
	ID         string    `json:"id"`
	EventID    string    `json:"-"`
	URL        string    `json:"url"`
	Handle     string    `json:"-"`
	Caption    string    `json:"caption"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Event struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Organizer           UserRef        `json:"organizer"`
	DateTime            time.Time      `json:"dateTime"`
	EndDateTime         *time.Time     `json:"endDateTime,omitempty"`
	Location            Location       `json:"location"`
	DanceStyle          DanceStyle     `json:"danceStyle"`
	SkillLevel          SkillLevel     `json:"skillLevel"`
	EventType           EventType      `json:"eventType"`
	Price               float64        `json:"price"`
	MaxParticipants     *int           `json:"maxParticipants,omitempty"`
	CurrentParticipants int            `json:"currentParticipants"`
	Participants        []Participant  `json:"participants,omitempty"`
	Gallery             []GalleryImage `json:"gallery,omitempty"`
	ImageURL            string         `json:"image,omitempty"`
	ImageHandle         string         `json:"-"`
	Tags                []string       `json:"tags"`
	Status              EventStatus    `json:"status"`
	Featured            bool           `json:"featured"`
	RejectionReason     *string        `json:"rejectionReason,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (e *Event) OwnedBy(userID string) bool {
	return e.Organizer.ID == userID
}

// CanManage reports whether the actor may mutate the event's content or delete it.
func (e *Event) CanManage(a Actor) bool {
	return a.IsAdmin() || e.OwnedBy(a.ID)
}

// VisibleTo reports whether the event can be read by the actor; a nil actor is anonymous.
func (e *Event) VisibleTo(a *Actor) bool {
	if e.Status == EventStatusApproved || e.Status == EventStatusCompleted {
		return true
	}
	return a != nil && e.CanManage(*a)
}

func (e *Event) Started(now time.Time) bool {
	return !e.DateTime.After(now)
}

func (e *Event) IsFull() bool {
	return e.MaxParticipants != nil && e.CurrentParticipants >= *e.MaxParticipants
}

func (e *Event) HasParticipant(userID string) bool {
	for _, p := range e.Participants {
		if p.User.ID == userID && p.Status != ParticipantCancelled {
			return true
		}
	}
	return false
}

// EventRef is the compact form used when populating references.
type EventRef struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	DateTime time.Time `json:"dateTime"`
	ImageURL string    `json:"image,omitempty"`
}

func (e *Event) Ref() *EventRef {
	return &EventRef{ID: e.ID, Title: e.Title, DateTime: e.DateTime, ImageURL: e.ImageURL}
}

// Upload is a binary file handed to the object storage collaborator.
type Upload struct {
	Filename string
	Content  io.Reader
}

// StoredImage is what object storage hands back: the public URL and the handle to delete it.
type StoredImage struct {
	URL    string
	Handle string
}

type CreateEventInput struct {
	Title           string
	Description     string
	DateTime        time.Time
	EndDateTime     *time.Time
	Location        Location
	DanceStyle      DanceStyle
	SkillLevel      SkillLevel
	EventType       EventType
	Price           float64
	MaxParticipants *int
	Tags            []string
	Image           *Upload
}

type UpdateEventInput struct {
	Title           *string
	Description     *string
	DateTime        *time.Time
	EndDateTime     *time.Time
	Location        *Location
	DanceStyle      *DanceStyle
	SkillLevel      *SkillLevel
	EventType       *EventType
	Price           *float64
	MaxParticipants *int
	Tags            []string
	Image           *Upload
}

type EventFilter struct {
	Status      *EventStatus
	OrganizerID string
	City        string
	DanceStyle  DanceStyle
	SkillLevel  SkillLevel
	EventType   EventType
	From        *time.Time
	To          *time.Time
	Query       string
	Featured    *bool
	Page        Page
}

type StatusUpdateInput struct {
	Status          EventStatus
	RejectionReason string
}

type BulkApproveResult struct {
	Requested            int      `json:"requested"`
	Approved             int      `json:"approved"`
	ApprovedIDs          []string `json:"approvedIds"`
	NotificationFailures int      `json:"notificationFailures"`
}
