package controller

import (
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"techclub_backend/internals/constants"
	"techclub_backend/internals/features/events/dto"
	"techclub_backend/internals/features/events/model"
	helper "techclub_backend/internals/helpers"
	"techclub_backend/internals/helpers/storage"
)

type EventAdminController struct {
	DB *gorm.DB
}

func NewEventAdminController(db *gorm.DB) *EventAdminController {
	return &EventAdminController{DB: db}
}

// 🟢 GET /api/admin/events
func (ctrl *EventAdminController) GetEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var events []model.EventModel
	if err := ctrl.DB.
		Order("event_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil data event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Event berhasil diambil", dto.ToEventResponseList(events), &pagination)
}

// 🟢 POST /api/admin/events  (multipart: field + poster + rules[]/benefits[])
func (ctrl *EventAdminController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !constants.IsValidCategory(req.EventCategory) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kategori event tidak dikenal")
	}
	if req.EventType != "" && !constants.IsValidEventType(req.EventType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe event harus free atau paid")
	}

	posterFile, err := c.FormFile("poster")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Poster event wajib diunggah")
	}
	if err := helper.ValidateImageUpload(posterFile); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	posterPath, err := storage.SaveImage("events", posterFile)
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan poster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan poster event")
	}

	form, _ := c.MultipartForm()
	rules := collectFormValues(form, "rules[]", "rules")
	benefits := collectFormValues(form, "benefits[]", "benefits")

	newEvent := req.ToModel(rules, benefits, posterPath)
	if err := ctrl.DB.Create(newEvent).Error; err != nil {
		storage.Delete(posterPath)
		log.Printf("[ERROR] Gagal menyimpan event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan event")
	}

	return helper.JsonCreated(c, "Event berhasil ditambahkan", dto.ToEventResponse(newEvent))
}

// 🟡 PUT /api/admin/events/:id
func (ctrl *EventAdminController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var ev model.EventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	updates := map[string]interface{}{}

	if req.EventCategory != nil {
		if !constants.IsValidCategory(*req.EventCategory) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori event tidak dikenal")
		}
		updates["event_category"] = *req.EventCategory
	}
	if req.EventTitle != nil {
		updates["event_title"] = *req.EventTitle
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}
	if req.EventTime != nil {
		updates["event_time"] = *req.EventTime
	}
	if req.EventLocation != nil {
		updates["event_location"] = *req.EventLocation
	}
	if req.EventSpeaker != nil {
		updates["event_speaker"] = *req.EventSpeaker
	}
	if req.EventSpeaker2 != nil {
		updates["event_speaker2"] = nilIfEmpty(*req.EventSpeaker2)
	}
	if req.EventSpeaker3 != nil {
		updates["event_speaker3"] = nilIfEmpty(*req.EventSpeaker3)
	}
	if req.EventModerator != nil {
		updates["event_moderator"] = *req.EventModerator
	}
	if req.EventType != nil {
		if !constants.IsValidEventType(*req.EventType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tipe event harus free atau paid")
		}
		updates["event_type"] = *req.EventType
	}
	if req.EventPrice != nil {
		if *req.EventPrice < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Harga tidak boleh negatif")
		}
		updates["event_price"] = *req.EventPrice
	}
	if req.EventQuota != nil {
		if *req.EventQuota <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kuota harus lebih dari 0")
		}
		updates["event_quota"] = *req.EventQuota
	}
	if req.EventAvailable != nil {
		updates["event_available"] = *req.EventAvailable
	}

	form, _ := c.MultipartForm()
	if hasFormKey(form, "rules[]", "rules") {
		updates["event_rules"] = pq.StringArray(collectFormValues(form, "rules[]", "rules"))
	}
	if hasFormKey(form, "benefits[]", "benefits") {
		updates["event_benefits"] = pq.StringArray(collectFormValues(form, "benefits[]", "benefits"))
	}

	// poster baru opsional; yang lama dihapus setelah update berhasil
	oldPoster := ""
	if posterFile, err := c.FormFile("poster"); err == nil && posterFile != nil {
		if err := helper.ValidateImageUpload(posterFile); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		posterPath, err := storage.SaveImage("events", posterFile)
		if err != nil {
			log.Printf("[ERROR] Gagal menyimpan poster: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan poster event")
		}
		oldPoster = ev.EventPoster
		updates["event_poster"] = posterPath
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}
	if oldPoster != "" {
		storage.Delete(oldPoster)
	}

	// reload untuk response terbaru
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data event terbaru")
	}

	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.ToEventResponse(&ev))
}

// 🔴 DELETE /api/admin/events/:id
func (ctrl *EventAdminController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var ev model.EventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}

	return helper.JsonDeleted(c, "Event berhasil dihapus", nil)
}

func collectFormValues(form *multipart.Form, keys ...string) []string {
	if form == nil || form.Value == nil {
		return nil
	}
	for _, key := range keys {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			out := make([]string, 0, len(vals))
			for _, v := range vals {
				if v = strings.TrimSpace(v); v != "" {
					out = append(out, v)
				}
			}
			return out
		}
	}
	return nil
}

func hasFormKey(form *multipart.Form, keys ...string) bool {
	if form == nil || form.Value == nil {
		return false
	}
	for _, key := range keys {
		if _, ok := form.Value[key]; ok {
			return true
		}
	}
	return false
}

func nilIfEmpty(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
