package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID       uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`
	AdminUsername string    `gorm:"column:admin_username;type:varchar(50);unique;not null" json:"admin_username"`
	AdminEmail    string    `gorm:"column:admin_email;type:varchar(255);unique" json:"admin_email"`
	AdminPassword string    `gorm:"column:admin_password;type:varchar(255);not null" json:"-"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

// TokenBlacklist menampung JWT yang sudah di-logout sampai kedaluwarsa.
// Scheduler membersihkan baris yang expired secara berkala.
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;unique" json:"token"`
	ExpiredAt time.Time `gorm:"not null;index" json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklists"
}
