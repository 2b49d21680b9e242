package service

import (
	"errors"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"techclub_backend/internals/configs"
	"techclub_backend/internals/features/admins/auth/model"
)

const tokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("username atau password salah")
	ErrInvalidGoogleToken = errors.New("ID token Google tidak valid")
	ErrAdminNotRegistered = errors.New("akun tidak terdaftar sebagai admin")
)

// Login memverifikasi username+password dan mengembalikan JWT HS256.
func Login(db *gorm.DB, username, password string) (string, *model.AdminModel, error) {
	var admin model.AdminModel
	if err := db.Where("admin_username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := generateToken(&admin)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// GoogleLogin memverifikasi ID token Google lalu mencocokkan email-nya
// dengan admin yang sudah terdaftar. Tidak ada auto-register: admin
// dibuat lewat seed atau manual.
func GoogleLogin(db *gorm.DB, idToken string) (string, *model.AdminModel, error) {
	if configs.GoogleClientID == "" {
		return "", nil, ErrInvalidGoogleToken
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return "", nil, ErrInvalidGoogleToken
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", nil, ErrInvalidGoogleToken
	}

	var admin model.AdminModel
	if err := db.Where("admin_email = ?", claimSet.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrAdminNotRegistered
		}
		return "", nil, err
	}

	token, err := generateToken(&admin)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// Logout memasukkan token ke blacklist sampai exp-nya lewat.
// Token tanpa exp diblacklist selama TTL default.
func Logout(db *gorm.DB, tokenString string) error {
	expiredAt := time.Now().Add(tokenTTL)

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := model.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		// token yang sama di-logout dua kali bukan error
		var existing model.TokenBlacklist
		if ferr := db.Where("token = ?", tokenString).First(&existing).Error; ferr == nil {
			return nil
		}
		return err
	}
	return nil
}

func generateToken(admin *model.AdminModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      admin.AdminID.String(),
		"username": admin.AdminUsername,
		"role":     "admin",
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
