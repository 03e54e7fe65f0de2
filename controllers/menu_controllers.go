package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/models"
	"github.com/yeremiapane/table-order-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetRestaurant -> identitas restoran (satu restoran per deployment)
func (mc *MenuController) GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := mc.DB.First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant info", restaurant)
}

// GetMenuItems -> list item, filter kategori & availability
func (mc *MenuController) GetMenuItems(c *gin.Context) {
	availableOnly := true
	if v := c.Query("available_only"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			availableOnly = parsed
		}
	}

	query := mc.DB.Model(&models.MenuItem{})
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := query.Order("id asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID -> detail 1 item
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.MenuItem
	if err := mc.DB.First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrItemUnavailable)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// GetCategories -> label kategori distinct yang tidak kosong
func (mc *MenuController) GetCategories(c *gin.Context) {
	var categories []string
	if err := mc.DB.Model(&models.MenuItem{}).
		Distinct().
		Where("category IS NOT NULL AND category != ''").
		Order("category asc").
		Pluck("category", &categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu categories", categories)
}
