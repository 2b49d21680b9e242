package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"techclub_backend/internals/constants"
	"techclub_backend/internals/features/documentations/model"
	helper "techclub_backend/internals/helpers"
)

type DocumentationCreateRequest struct {
	EventID     string `form:"event_id"`
	Category    string `form:"category"    validate:"required"`
	EventTitle  string `form:"event_title" validate:"required"`
	Year        int    `form:"year"        validate:"required,gt=0"`
	Description string `form:"description"`
}

type DocumentationUpdateRequest struct {
	EventID     *string `form:"event_id"`
	Category    *string `form:"category"`
	EventTitle  *string `form:"event_title"`
	Year        *int    `form:"year"`
	Description *string `form:"description"`
	// path tersimpan yang ingin dipertahankan; gambar baru dikirim sebagai file
	KeepImages []string `form:"keep_images[]"`
}

type DocumentationResponse struct {
	DocumentationID            uuid.UUID  `json:"documentation_id"`
	DocumentationEventID       *uuid.UUID `json:"documentation_event_id,omitempty"`
	DocumentationCategory      string     `json:"documentation_category"`
	DocumentationCategoryLabel string     `json:"documentation_category_label"`
	DocumentationEventTitle    string     `json:"documentation_event_title"`
	DocumentationYear          int        `json:"documentation_year"`
	DocumentationDescription   string     `json:"documentation_description"`
	DocumentationImages        []string   `json:"documentation_images"`
	DocumentationImageURLs     []string   `json:"documentation_image_urls"`
	DocumentationCreatedAt     string     `json:"documentation_created_at"`
	DocumentationUpdatedAt     string     `json:"documentation_updated_at"`
}

// DecodeImages membaca kolom JSONB menjadi slice path tersimpan.
// Kolom kosong atau korup dibaca sebagai slice kosong, bukan error.
func DecodeImages(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var paths []string
	if err := json.Unmarshal(raw, &paths); err != nil {
		return []string{}
	}
	return paths
}

func EncodeImages(paths []string) datatypes.JSON {
	if paths == nil {
		paths = []string{}
	}
	raw, _ := json.Marshal(paths)
	return datatypes.JSON(raw)
}

func ToDocumentationResponse(m *model.DocumentationModel) *DocumentationResponse {
	paths := DecodeImages(m.DocumentationImages)
	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		urls = append(urls, helper.ResolveMediaURL(p))
	}

	return &DocumentationResponse{
		DocumentationID:            m.DocumentationID,
		DocumentationEventID:       m.DocumentationEventID,
		DocumentationCategory:      m.DocumentationCategory,
		DocumentationCategoryLabel: constants.CategoryLabel(m.DocumentationCategory),
		DocumentationEventTitle:    m.DocumentationEventTitle,
		DocumentationYear:          m.DocumentationYear,
		DocumentationDescription:   m.DocumentationDescription,
		DocumentationImages:        paths,
		DocumentationImageURLs:     urls,
		DocumentationCreatedAt:     m.DocumentationCreatedAt.Format("2006-01-02 15:04:05"),
		DocumentationUpdatedAt:     m.DocumentationUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToDocumentationResponseList(models []model.DocumentationModel) []DocumentationResponse {
	result := make([]DocumentationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToDocumentationResponse(&models[i]))
	}
	return result
}
