package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentationModel menyimpan galeri dokumentasi kegiatan.
// DocumentationEventID hanya referensi lemah: event-nya boleh sudah
// dihapus tanpa ikut menghapus dokumentasinya.
type DocumentationModel struct {
	DocumentationID          uuid.UUID      `gorm:"column:documentation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"documentation_id"`
	DocumentationEventID     *uuid.UUID     `gorm:"column:documentation_event_id;type:uuid;index" json:"documentation_event_id,omitempty"`
	DocumentationCategory    string         `gorm:"column:documentation_category;type:varchar(50);not null;index" json:"documentation_category"`
	DocumentationEventTitle  string         `gorm:"column:documentation_event_title;type:varchar(255);not null" json:"documentation_event_title"`
	DocumentationYear        int            `gorm:"column:documentation_year;not null;index" json:"documentation_year"`
	DocumentationDescription string         `gorm:"column:documentation_description;type:text" json:"documentation_description"`
	DocumentationImages      datatypes.JSON `gorm:"column:documentation_images;type:jsonb" json:"documentation_images"`

	DocumentationCreatedAt time.Time `gorm:"column:documentation_created_at;autoCreateTime" json:"documentation_created_at"`
	DocumentationUpdatedAt time.Time `gorm:"column:documentation_updated_at;autoUpdateTime" json:"documentation_updated_at"`
}

func (DocumentationModel) TableName() string {
	return "documentations"
}
