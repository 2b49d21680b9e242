package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"techclub_backend/internals/configs"
	adminModel "techclub_backend/internals/features/admins/auth/model"
)

// RunAllSeeds menjalankan seluruh seed idempoten saat startup.
func RunAllSeeds(db *gorm.DB) {
	seedAdmin(db)
}

// seedAdmin membuat akun admin pertama dari env bila tabelnya masih kosong
// atau username seed belum ada. Tanpa ADMIN_SEED_PASSWORD seed dilewati.
func seedAdmin(db *gorm.DB) {
	username := configs.GetEnv("ADMIN_SEED_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_SEED_PASSWORD", "")
	email := configs.GetEnv("ADMIN_SEED_EMAIL", "")

	if password == "" {
		log.Println("[INFO] ADMIN_SEED_PASSWORD kosong, seed admin dilewati")
		return
	}

	var count int64
	if err := db.Model(&adminModel.AdminModel{}).
		Where("admin_username = ?", username).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] Gagal memeriksa admin seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Gagal hash password admin seed: %v", err)
		return
	}

	admin := adminModel.AdminModel{
		AdminUsername: username,
		AdminEmail:    email,
		AdminPassword: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat admin seed: %v", err)
		return
	}
	log.Printf("[INFO] ✅ Admin seed '%s' dibuat", username)
}
