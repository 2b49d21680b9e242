package dto

import (
	"github.com/google/uuid"

	"techclub_backend/internals/features/posters/model"
	helper "techclub_backend/internals/helpers"
)

type PosterCreateRequest struct {
	Title string `form:"title" validate:"required"`
	Type  string `form:"type"  validate:"required"`
	Date  string `form:"date"`
}

type PosterUpdateRequest struct {
	Title *string `form:"title"`
	Type  *string `form:"type"`
	Date  *string `form:"date"`
}

type PosterResponse struct {
	PosterID        uuid.UUID `json:"poster_id"`
	PosterTitle     string    `json:"poster_title"`
	PosterType      string    `json:"poster_type"`
	PosterImage     string    `json:"poster_image"`
	PosterImageURL  string    `json:"poster_image_url"`
	PosterDate      string    `json:"poster_date"`
	PosterCreatedAt string    `json:"poster_created_at"`
	PosterUpdatedAt string    `json:"poster_updated_at"`
}

func ToPosterResponse(m *model.PosterModel) *PosterResponse {
	return &PosterResponse{
		PosterID:        m.PosterID,
		PosterTitle:     m.PosterTitle,
		PosterType:      m.PosterType,
		PosterImage:     m.PosterImage,
		PosterImageURL:  helper.ResolveMediaURL(m.PosterImage),
		PosterDate:      m.PosterDate,
		PosterCreatedAt: m.PosterCreatedAt.Format("2006-01-02 15:04:05"),
		PosterUpdatedAt: m.PosterUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToPosterResponseList(models []model.PosterModel) []PosterResponse {
	result := make([]PosterResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToPosterResponse(&models[i]))
	}
	return result
}
