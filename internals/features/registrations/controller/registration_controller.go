package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "techclub_backend/internals/features/events/model"
	eventService "techclub_backend/internals/features/events/service"
	"techclub_backend/internals/features/registrations/dto"
	"techclub_backend/internals/features/registrations/model"
	"techclub_backend/internals/features/registrations/service"
	helper "techclub_backend/internals/helpers"
	"techclub_backend/internals/helpers/storage"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// 🟢 POST /api/registrations
// Multipart: event_id, name, whatsapp, institution, file_name, proof (opsional).
// Validasi field & file terjadi sebelum menyentuh DB; cek kapasitas dan
// increment event_registered berjalan dalam satu transaksi supaya dua
// pendaftar terakhir tidak bisa sama-sama lolos kuota.
func (ctrl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	var req dto.RegistrationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	whatsapp := service.NormalizeWhatsapp(req.Whatsapp)
	if whatsapp == "" {
		return helper.JsonValidationError(c, map[string][]string{
			"whatsapp": {"harus berisi nomor yang valid"},
		})
	}

	// validasi file bukti sebelum ada efek samping apa pun
	proofFile, ferr := c.FormFile("proof")
	if ferr != nil {
		proofFile = nil // bukti opsional
	}
	if err := helper.ValidateImageUpload(proofFile); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ev eventModel.EventModel
	if err := ctrl.DB.Where("event_id = ?", eventID).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	// cek advisory dulu supaya error-nya jelas sebelum upload bukti
	switch eventService.ClassifyEvent(&ev) {
	case eventService.StatusUnavailable:
		return helper.JsonError(c, fiber.StatusConflict, "Event Belum Tersedia")
	case eventService.StatusFull:
		return helper.JsonError(c, fiber.StatusConflict, "Kuota Penuh")
	}

	proofPath := ""
	if proofFile != nil {
		proofPath, err = storage.SaveImage("proofs", proofFile)
		if err != nil {
			log.Printf("[ERROR] Gagal menyimpan bukti transfer: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan bukti transfer")
		}
	}

	registration := &model.RegistrationModel{
		RegistrationEventID:     eventID,
		RegistrationName:        req.Name,
		RegistrationWhatsapp:    whatsapp,
		RegistrationInstitution: req.Institution,
		RegistrationProofName:   req.FileName,
		RegistrationProofImage:  proofPath,
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		storage.Delete(proofPath)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// guard kapasitas: increment hanya jika masih ada slot dan gate terbuka
	res := tx.Model(&eventModel.EventModel{}).
		Where("event_id = ? AND event_available = TRUE AND event_registered < event_quota", eventID).
		UpdateColumn("event_registered", gorm.Expr("event_registered + 1"))
	if res.Error != nil {
		tx.Rollback()
		storage.Delete(proofPath)
		log.Printf("[ERROR] Gagal increment kuota: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan registrasi")
	}
	if res.RowsAffected == 0 {
		// kalah race atau gate ditutup di antara dua pembacaan
		tx.Rollback()
		storage.Delete(proofPath)
		if err := ctrl.DB.Where("event_id = ?", eventID).First(&ev).Error; err == nil &&
			eventService.ClassifyEvent(&ev) == eventService.StatusUnavailable {
			return helper.JsonError(c, fiber.StatusConflict, "Event Belum Tersedia")
		}
		return helper.JsonError(c, fiber.StatusConflict, "Kuota Penuh")
	}

	if err := tx.Create(registration).Error; err != nil {
		tx.Rollback()
		storage.Delete(proofPath)
		log.Printf("[ERROR] Gagal menyimpan registrasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan registrasi")
	}

	if err := tx.Commit().Error; err != nil {
		storage.Delete(proofPath)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	resp := dto.ToRegistrationResponse(registration, ev.EventTitle)

	// event berbayar → sertakan token Snap (gagal bikin token tidak
	// membatalkan registrasi, panitia bisa tagih manual)
	if ev.EventType == "paid" && ev.EventPrice > 0 && service.SnapEnabled() {
		if token, err := service.GenerateSnapToken(registration, &ev); err != nil {
			log.Printf("[ERROR] Gagal membuat token Snap: %v", err)
		} else {
			resp.PaymentToken = token
		}
	}

	return helper.JsonCreated(c, "Registrasi berhasil", resp)
}
