package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/models"
	"github.com/yeremiapane/table-order-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

func isValidStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusAccepted, models.StatusPreparing,
		models.StatusReady, models.StatusDelivered, models.StatusCancelled:
		return true
	}
	return false
}

// GetAllOrders -> semua order, terbaru dulu
func (ac *AdminController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := ac.DB.Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All orders", orders)
}

// GetPendingOrders -> antrian order pending, tertua dulu
func (ac *AdminController) GetPendingOrders(c *gin.Context) {
	var orders []models.Order
	if err := ac.DB.Preload("Items").
		Where("status = ?", models.StatusPending).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pending orders", orders)
}

// GetOrderDetails -> detail order apapun (tanpa batasan owner)
func (ac *AdminController) GetOrderDetails(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := ac.DB.Preload("Items").Preload("Items.MenuItem").
		First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrderItems -> item-item satu order
func (ac *AdminController) GetOrderItems(c *gin.Context) {
	orderID := c.Param("order_id")

	var items []models.OrderItem
	if err := ac.DB.Preload("MenuItem").
		Where("order_id = ?", orderID).
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(items) == 0 {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order items", items)
}

// UpdateOrderStatus -> override administratif langsung: status apapun
// boleh ditimpa dari status apapun, tanpa guard transisi. Jalur
// lifecycle yang dijaga ada di AcceptOrder/MarkOrderReady/DeliverOrder.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var req struct {
		Status     string  `json:"status" binding:"required"`
		AdminNotes *string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !isValidStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}

	var order models.Order
	if err := ac.DB.First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	order.Status = req.Status
	order.AdminNotes = req.AdminNotes
	if err := ac.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s status set to %s", order.OrderNumber, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// UpdateOrderItemStatus -> set status satu item lalu rollup status
// order induknya dari status seluruh item (models.DeriveOrderStatus).
func (ac *AdminController) UpdateOrderItemStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	itemID := c.Param("item_id")

	var req struct {
		Status     string  `json:"status" binding:"required"`
		AdminNotes *string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !isValidStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}

	var item models.OrderItem
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND order_id = ?", itemID, orderID).
			First(&item).Error; err != nil {
			return ErrOrderItemNotFound
		}

		item.Status = req.Status
		item.AdminNotes = req.AdminNotes
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		var siblings []models.OrderItem
		if err := tx.Where("order_id = ?", item.OrderID).Find(&siblings).Error; err != nil {
			return err
		}

		if derived, ok := models.DeriveOrderStatus(siblings); ok {
			if err := tx.Model(&models.Order{}).
				Where("id = ?", item.OrderID).
				Update("status", derived).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err == ErrOrderItemNotFound {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item status updated", item)
}

// AcceptOrder -> pending => accepted; seluruh item ikut accepted
// apapun status item sebelumnya.
func (ac *AdminController) AcceptOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return ErrOrderNotFound
		}

		if order.Status != models.StatusPending {
			return &CustomError{fmt.Sprintf("order is not in pending status (current: %s)", order.Status)}
		}

		if err := tx.Model(&order).Update("status", models.StatusAccepted).Error; err != nil {
			return err
		}
		return tx.Model(&models.OrderItem{}).
			Where("order_id = ?", order.ID).
			Update("status", models.StatusAccepted).Error
	})
	if err == ErrOrderNotFound {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		if _, ok := err.(*CustomError); ok {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order accepted successfully", nil)
}

// MarkOrderReady -> accepted/preparing => ready; item yang belum
// cancelled ikut ready.
func (ac *AdminController) MarkOrderReady(c *gin.Context) {
	orderID := c.Param("order_id")

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return ErrOrderNotFound
		}

		if order.Status != models.StatusAccepted && order.Status != models.StatusPreparing {
			return &CustomError{fmt.Sprintf("order is not in accepted or preparing status (current: %s)", order.Status)}
		}

		if err := tx.Model(&order).Update("status", models.StatusReady).Error; err != nil {
			return err
		}
		return tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND status != ?", order.ID, models.StatusCancelled).
			Update("status", models.StatusReady).Error
	})
	if err == ErrOrderNotFound {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		if _, ok := err.(*CustomError); ok {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order marked as ready", nil)
}

// DeliverOrder -> ready => delivered; item yang belum cancelled ikut
// delivered.
func (ac *AdminController) DeliverOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return ErrOrderNotFound
		}

		if order.Status != models.StatusReady {
			return &CustomError{fmt.Sprintf("order is not ready for delivery (current: %s)", order.Status)}
		}

		if err := tx.Model(&order).Update("status", models.StatusDelivered).Error; err != nil {
			return err
		}
		return tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND status != ?", order.ID, models.StatusCancelled).
			Update("status", models.StatusDelivered).Error
	})
	if err == ErrOrderNotFound {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		if _, ok := err.(*CustomError); ok {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order delivered successfully", nil)
}
