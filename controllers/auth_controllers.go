package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/config"
	"github.com/yeremiapane/table-order-app/middlewares"
	"github.com/yeremiapane/table-order-app/models"
	"github.com/yeremiapane/table-order-app/services"
	"github.com/yeremiapane/table-order-app/utils"
)

type AuthController struct {
	DB  *gorm.DB
	SMS services.SMSSender
}

func NewAuthController(db *gorm.DB, sms services.SMSSender) *AuthController {
	return &AuthController{DB: db, SMS: sms}
}

// PhoneLogin -> kirim OTP untuk login/registrasi. User dibuat lazily
// saat phone belum dikenal; kode lama yang belum dipakai tertimpa.
func (ac *AuthController) PhoneLogin(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	err := ac.DB.Where("phone = ?", req.Phone).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{Phone: req.Phone, IsVerified: false}
		if err := ac.DB.Create(&user).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("New user created with phone: %s", req.Phone)
	} else if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	hashed, err := utils.HashOTP(code)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	expiresAt := time.Now().Add(config.Get().OTPTTL)
	user.OTP = &hashed
	user.OTPExpiresAt = &expiresAt
	if err := ac.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Pengiriman out-of-band, tidak memblokir request
	services.SendOTP(ac.SMS, user.Phone, code)

	data := gin.H{
		"phone":       user.Phone,
		"is_new_user": user.Name == nil,
	}
	// Hanya development: production tidak boleh menaruh kode di response
	if config.Get().Debug {
		data["otp"] = code
	}

	utils.RespondJSON(c, http.StatusOK, "OTP sent successfully", data)
}

// VerifyOTP -> verifikasi kode, tandai user verified, terbitkan token.
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("phone = ?", req.Phone).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	if user.OTP == nil || !utils.CheckOTP(*user.OTP, req.OTP) {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidOTP)
		return
	}

	if user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		utils.RespondError(c, http.StatusBadRequest, ErrOTPExpired)
		return
	}

	// Kode sekali pakai: bersihkan setelah sukses
	user.IsVerified = true
	user.OTP = nil
	user.OTPExpiresAt = nil
	if err := ac.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(user.Phone, 0)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Phone %s verified, token issued", user.Phone)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// GetProfile -> user dari token
func (ac *AuthController) GetProfile(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrNoPermission)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profile data", user)
}

// UpdateProfile -> set display name setelah verifikasi
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrNoPermission)
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user.Name = &req.Name
	if err := ac.DB.Save(user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile updated", user)
}
