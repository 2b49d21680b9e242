package model

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationModel struct {
	RegistrationID          uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`
	RegistrationEventID     uuid.UUID `gorm:"column:registration_event_id;type:uuid;not null;index:idx_registrations_event_id" json:"registration_event_id"`
	RegistrationName        string    `gorm:"column:registration_name;type:varchar(128);not null"        json:"registration_name"`
	RegistrationWhatsapp    string    `gorm:"column:registration_whatsapp;type:varchar(15);not null"     json:"registration_whatsapp"`
	RegistrationInstitution string    `gorm:"column:registration_institution;type:varchar(128);not null" json:"registration_institution"`
	RegistrationProofName   string    `gorm:"column:registration_proof_name;type:varchar(255)"           json:"registration_proof_name"`
	RegistrationProofImage  string    `gorm:"column:registration_proof_image;type:varchar(512)"          json:"registration_proof_image"`

	RegistrationCreatedAt time.Time `gorm:"column:registration_created_at;type:timestamptz;autoCreateTime" json:"registration_created_at"`

	// NOTE: registration_event_id adalah weak reference (tanpa FK constraint);
	// event bisa saja sudah dihapus sementara registrannya tetap tersimpan.
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
