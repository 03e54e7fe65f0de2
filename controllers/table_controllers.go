package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/middlewares"
	"github.com/yeremiapane/table-order-app/models"
	"github.com/yeremiapane/table-order-app/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables -> semua meja aktif
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Where("is_active = ?", true).Order("id asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetAvailableTables -> meja aktif yang berstatus available
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Where("is_active = ? AND status = ?", true, models.TableAvailable).
		Order("id asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// GetTableByNumber -> detail meja via nomor
func (tc *TableController) GetTableByNumber(c *gin.Context) {
	tableNumber := c.Param("table_number")

	var table models.Table
	if err := tc.DB.Where("table_number = ? AND is_active = ?", tableNumber, true).
		First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// StartSession -> mulai sesi meja. Insert sesi dan flip status meja
// harus atomik; flip memakai compare-and-set pada status supaya dua
// start bersamaan tidak bisa sama-sama menduduki meja.
func (tc *TableController) StartSession(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	tableNumber := c.Param("table_number")

	var session models.TableSession
	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("table_number = ? AND is_active = ?", tableNumber, true).
			First(&table).Error; err != nil {
			return ErrTableNotFound
		}

		if table.Status != models.TableAvailable {
			return ErrTableUnavailable
		}

		// Satu sesi aktif per user, di meja manapun
		var count int64
		if err := tx.Model(&models.TableSession{}).
			Where("user_id = ? AND is_active = ?", user.ID, true).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyInSession
		}

		res := tx.Model(&models.Table{}).
			Where("id = ? AND status = ?", table.ID, models.TableAvailable).
			Update("status", models.TableOccupied)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// start lain menang duluan
			return ErrTableUnavailable
		}

		session = models.TableSession{
			TableID:      table.ID,
			UserID:       user.ID,
			SessionStart: time.Now(),
			IsActive:     true,
		}
		return tx.Create(&session).Error
	})

	switch err {
	case nil:
	case ErrTableNotFound:
		utils.RespondError(c, http.StatusNotFound, err)
		return
	case ErrTableUnavailable:
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	case ErrAlreadyInSession:
		utils.RespondError(c, http.StatusConflict, err)
		return
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Session %d started: user=%d table=%s", session.ID, user.ID, tableNumber)
	utils.RespondJSON(c, http.StatusCreated, "Session started", session)
}

// EndSession -> tutup sesi untuk pasangan (user, meja) persis, lalu
// kembalikan meja ke available, atomik.
func (tc *TableController) EndSession(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	tableNumber := c.Param("table_number")

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("table_number = ? AND is_active = ?", tableNumber, true).
			First(&table).Error; err != nil {
			return ErrTableNotFound
		}

		var session models.TableSession
		if err := tx.Where("table_id = ? AND user_id = ? AND is_active = ?", table.ID, user.ID, true).
			First(&session).Error; err != nil {
			return ErrNoActiveSession
		}

		now := time.Now()
		session.IsActive = false
		session.SessionEnd = &now
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		return tx.Model(&models.Table{}).
			Where("id = ?", table.ID).
			Update("status", models.TableAvailable).Error
	})

	switch err {
	case nil:
	case ErrTableNotFound, ErrNoActiveSession:
		utils.RespondError(c, http.StatusNotFound, err)
		return
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Session ended successfully", nil)
}

// GetCurrentSession -> sesi aktif user, 404 jika tidak ada
func (tc *TableController) GetCurrentSession(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var session models.TableSession
	if err := tc.DB.Where("user_id = ? AND is_active = ?", user.ID, true).
		First(&session).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrNoActiveSession)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Current session", session)
}

// ScanTable -> scan QR meja, identik dengan StartSession
func (tc *TableController) ScanTable(c *gin.Context) {
	tc.StartSession(c)
}
