package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID          uuid.UUID      `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventCategory    string         `gorm:"column:event_category;type:varchar(32);not null;index:idx_events_category" json:"event_category"`
	EventTitle       string         `gorm:"column:event_title;type:varchar(255);not null"                  json:"event_title"`
	EventDescription string         `gorm:"column:event_description;type:text"                              json:"event_description"`
	EventRules       pq.StringArray `gorm:"column:event_rules;type:text[]"                                  json:"event_rules"`
	EventBenefits    pq.StringArray `gorm:"column:event_benefits;type:text[]"                               json:"event_benefits"`
	EventDate        string         `gorm:"column:event_date;type:varchar(64)"                              json:"event_date"`
	EventTime        string         `gorm:"column:event_time;type:varchar(64)"                              json:"event_time"`
	EventLocation    string         `gorm:"column:event_location;type:varchar(255)"                         json:"event_location"`
	EventSpeaker     string         `gorm:"column:event_speaker;type:varchar(128)"                          json:"event_speaker"`
	EventSpeaker2    *string        `gorm:"column:event_speaker2;type:varchar(128)"                         json:"event_speaker2,omitempty"`
	EventSpeaker3    *string        `gorm:"column:event_speaker3;type:varchar(128)"                         json:"event_speaker3,omitempty"`
	EventModerator   string         `gorm:"column:event_moderator;type:varchar(128)"                        json:"event_moderator"`
	EventType        string         `gorm:"column:event_type;type:varchar(16);not null;default:'free'"      json:"event_type"`
	EventPrice       int            `gorm:"column:event_price;not null;default:0"                           json:"event_price"`
	EventQuota       int            `gorm:"column:event_quota;not null;default:0"                           json:"event_quota"`
	EventRegistered  int            `gorm:"column:event_registered;not null;default:0"                      json:"event_registered"`
	EventAvailable   bool           `gorm:"column:event_available;not null;default:true"                    json:"event_available"`
	EventPoster      string         `gorm:"column:event_poster;type:varchar(512)"                           json:"event_poster"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index"          json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
