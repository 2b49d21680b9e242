package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"techclub_backend/internals/features/events/dto"
	"techclub_backend/internals/features/events/model"
	"techclub_backend/internals/features/events/service"
	helper "techclub_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// 🟢 GET /api/events?category=&q=
// Daftar penuh (tanpa pagination), difilter di memori dengan filter murni
// supaya perilakunya sama dengan pencarian di sisi klien.
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.
		Order("event_created_at DESC").
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil data event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	filtered := service.FilterEvents(events, c.Query("category", "all"), c.Query("q"))
	return helper.JsonList(c, "Event berhasil diambil", dto.ToEventResponseList(filtered), nil)
}

// 🟢 GET /api/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var ev model.EventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		log.Printf("[ERROR] Event dengan ID '%s' tidak ditemukan: %v", id, err)
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventResponse(&ev))
}
