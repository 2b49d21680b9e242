package dto

import (
	"github.com/google/uuid"

	"techclub_backend/internals/features/admins/auth/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type AdminResponse struct {
	AdminID       uuid.UUID `json:"admin_id"`
	AdminUsername string    `json:"admin_username"`
	AdminEmail    string    `json:"admin_email"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

func ToAdminResponse(m *model.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:       m.AdminID,
		AdminUsername: m.AdminUsername,
		AdminEmail:    m.AdminEmail,
	}
}
