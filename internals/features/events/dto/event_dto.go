package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"techclub_backend/internals/constants"
	"techclub_backend/internals/features/events/model"
	"techclub_backend/internals/features/events/service"
	helper "techclub_backend/internals/helpers"
)

// Request pembuatan event (field non-file dari form multipart; poster
// diambil terpisah sebagai file).
type EventCreateRequest struct {
	EventCategory    string  `form:"category"    validate:"required"`
	EventTitle       string  `form:"title"       validate:"required"`
	EventDescription string  `form:"description"`
	EventDate        string  `form:"date"`
	EventTime        string  `form:"time"`
	EventLocation    string  `form:"location"`
	EventSpeaker     string  `form:"speaker"     validate:"required"`
	EventSpeaker2    *string `form:"speaker2"`
	EventSpeaker3    *string `form:"speaker3"`
	EventModerator   string  `form:"moderator"`
	EventType        string  `form:"event_type"`
	EventPrice       int     `form:"price"       validate:"gte=0"`
	EventQuota       int     `form:"quota"       validate:"gt=0"`
	EventAvailable   *bool   `form:"available"`
}

// Request update event; semua field opsional, hanya yang dikirim yang diubah.
type EventUpdateRequest struct {
	EventCategory    *string `form:"category"`
	EventTitle       *string `form:"title"`
	EventDescription *string `form:"description"`
	EventDate        *string `form:"date"`
	EventTime        *string `form:"time"`
	EventLocation    *string `form:"location"`
	EventSpeaker     *string `form:"speaker"`
	EventSpeaker2    *string `form:"speaker2"`
	EventSpeaker3    *string `form:"speaker3"`
	EventModerator   *string `form:"moderator"`
	EventType        *string `form:"event_type"`
	EventPrice       *int    `form:"price"`
	EventQuota       *int    `form:"quota"`
	EventAvailable   *bool   `form:"available"`
}

type EventResponse struct {
	EventID            uuid.UUID `json:"event_id"`
	EventCategory      string    `json:"event_category"`
	EventCategoryLabel string    `json:"event_category_label"`
	EventTitle         string    `json:"event_title"`
	EventDescription   string    `json:"event_description"`
	EventRules         []string  `json:"event_rules"`
	EventBenefits      []string  `json:"event_benefits"`
	EventDate          string    `json:"event_date"`
	EventTime          string    `json:"event_time"`
	EventLocation      string    `json:"event_location"`
	EventSpeaker       string    `json:"event_speaker"`
	EventSpeaker2      *string   `json:"event_speaker2,omitempty"`
	EventSpeaker3      *string   `json:"event_speaker3,omitempty"`
	EventModerator     string    `json:"event_moderator"`
	EventType          string    `json:"event_type"`
	EventPrice         int       `json:"event_price"`
	EventPriceLabel    string    `json:"event_price_label"`
	EventQuota         int       `json:"event_quota"`
	EventRegistered    int       `json:"event_registered"`
	EventAvailable     bool      `json:"event_available"`

	// Turunan dari predikat ketersediaan; dihitung di satu tempat
	// supaya kartu, detail, dan form selalu konsisten.
	EventStatus             string `json:"event_status"`
	EventStatusLabel        string `json:"event_status_label"`
	EventIsFull             bool   `json:"event_is_full"`
	EventIsRegistrationOpen bool   `json:"event_is_registration_open"`

	EventPoster    string `json:"event_poster"`
	EventPosterURL string `json:"event_poster_url"`
	EventCreatedAt string `json:"event_created_at"`
}

func (r *EventCreateRequest) ToModel(rules, benefits []string, posterPath string) *model.EventModel {
	eventType := r.EventType
	if eventType == "" {
		eventType = constants.EventTypeFree
	}
	available := true
	if r.EventAvailable != nil {
		available = *r.EventAvailable
	}
	return &model.EventModel{
		EventCategory:    r.EventCategory,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventRules:       pq.StringArray(rules),
		EventBenefits:    pq.StringArray(benefits),
		EventDate:        r.EventDate,
		EventTime:        r.EventTime,
		EventLocation:    r.EventLocation,
		EventSpeaker:     r.EventSpeaker,
		EventSpeaker2:    r.EventSpeaker2,
		EventSpeaker3:    r.EventSpeaker3,
		EventModerator:   r.EventModerator,
		EventType:        eventType,
		EventPrice:       r.EventPrice,
		EventQuota:       r.EventQuota,
		EventAvailable:   available,
		EventPoster:      posterPath,
	}
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	status := service.ClassifyEvent(m)
	return &EventResponse{
		EventID:            m.EventID,
		EventCategory:      m.EventCategory,
		EventCategoryLabel: constants.CategoryLabel(m.EventCategory),
		EventTitle:         m.EventTitle,
		EventDescription:   m.EventDescription,
		EventRules:         append([]string{}, m.EventRules...),
		EventBenefits:      append([]string{}, m.EventBenefits...),
		EventDate:          m.EventDate,
		EventTime:          m.EventTime,
		EventLocation:      m.EventLocation,
		EventSpeaker:       m.EventSpeaker,
		EventSpeaker2:      m.EventSpeaker2,
		EventSpeaker3:      m.EventSpeaker3,
		EventModerator:     m.EventModerator,
		EventType:          m.EventType,
		EventPrice:         m.EventPrice,
		EventPriceLabel:    service.FormatPrice(m.EventType, m.EventPrice),
		EventQuota:         m.EventQuota,
		EventRegistered:    m.EventRegistered,
		EventAvailable:     m.EventAvailable,

		EventStatus:             string(status),
		EventStatusLabel:        service.StatusLabel(status),
		EventIsFull:             status == service.StatusFull,
		EventIsRegistrationOpen: status == service.StatusOpen,

		EventPoster:    m.EventPoster,
		EventPosterURL: helper.ResolveMediaURL(m.EventPoster),
		EventCreatedAt: m.EventCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToEventResponse(&models[i]))
	}
	return result
}
