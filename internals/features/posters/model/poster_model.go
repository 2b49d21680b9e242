package model

import (
	"time"

	"github.com/google/uuid"
)

// PosterModel menyimpan poster promosi yang tampil di beranda.
// PosterType adalah label bebas (mis. "Open Class", "webinar"), pencocokan
// filternya dinormalisasi di service.
type PosterModel struct {
	PosterID    uuid.UUID `gorm:"column:poster_id;type:uuid;default:gen_random_uuid();primaryKey" json:"poster_id"`
	PosterTitle string    `gorm:"column:poster_title;type:varchar(255);not null" json:"poster_title"`
	PosterType  string    `gorm:"column:poster_type;type:varchar(100);not null;index" json:"poster_type"`
	PosterImage string    `gorm:"column:poster_image;type:varchar(255);not null" json:"poster_image"`
	PosterDate  string    `gorm:"column:poster_date;type:varchar(100)" json:"poster_date"`

	PosterCreatedAt time.Time `gorm:"column:poster_created_at;autoCreateTime" json:"poster_created_at"`
	PosterUpdatedAt time.Time `gorm:"column:poster_updated_at;autoUpdateTime" json:"poster_updated_at"`
}

func (PosterModel) TableName() string {
	return "posters"
}
