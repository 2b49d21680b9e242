package dto

import (
	"github.com/google/uuid"

	"techclub_backend/internals/features/registrations/model"
	helper "techclub_backend/internals/helpers"
)

// Field non-file dari form multipart pendaftaran publik.
type RegistrationCreateRequest struct {
	EventID     string `form:"event_id"    validate:"required"`
	Name        string `form:"name"        validate:"required"`
	Whatsapp    string `form:"whatsapp"    validate:"required"`
	Institution string `form:"institution" validate:"required"`
	FileName    string `form:"file_name"`
}

type RegistrationResponse struct {
	RegistrationID          uuid.UUID `json:"registration_id"`
	RegistrationEventID     uuid.UUID `json:"registration_event_id"`
	RegistrationEventTitle  string    `json:"registration_event_title,omitempty"`
	RegistrationName        string    `json:"registration_name"`
	RegistrationWhatsapp    string    `json:"registration_whatsapp"`
	RegistrationInstitution string    `json:"registration_institution"`
	RegistrationProofName   string    `json:"registration_proof_name,omitempty"`
	RegistrationProofURL    string    `json:"registration_proof_url,omitempty"`
	RegistrationCreatedAt   string    `json:"registration_created_at"`

	// Token Snap Midtrans; hanya terisi untuk event berbayar saat
	// pembayaran online aktif.
	PaymentToken string `json:"payment_token,omitempty"`
}

func ToRegistrationResponse(m *model.RegistrationModel, eventTitle string) *RegistrationResponse {
	return &RegistrationResponse{
		RegistrationID:          m.RegistrationID,
		RegistrationEventID:     m.RegistrationEventID,
		RegistrationEventTitle:  eventTitle,
		RegistrationName:        m.RegistrationName,
		RegistrationWhatsapp:    m.RegistrationWhatsapp,
		RegistrationInstitution: m.RegistrationInstitution,
		RegistrationProofName:   m.RegistrationProofName,
		RegistrationProofURL:    helper.ResolveMediaURL(m.RegistrationProofImage),
		RegistrationCreatedAt:   m.RegistrationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToRegistrationResponseList(models []model.RegistrationModel, eventTitles map[uuid.UUID]string) []RegistrationResponse {
	result := make([]RegistrationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToRegistrationResponse(&models[i], eventTitles[models[i].RegistrationEventID]))
	}
	return result
}
