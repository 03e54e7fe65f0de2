package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/middlewares"
	"github.com/yeremiapane/table-order-app/models"
	"github.com/yeremiapane/table-order-app/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// Bill adalah snapshot denormalisasi untuk dicetak; murni read-side,
// tidak mengubah state.
type Bill struct {
	OrderNumber         string     `json:"order_number"`
	OrderDate           string     `json:"order_date"`
	RestaurantName      string     `json:"restaurant_name"`
	RestaurantAddress   string     `json:"restaurant_address"`
	CustomerName        string     `json:"customer_name"`
	CustomerPhone       string     `json:"customer_phone"`
	TableNumber         string     `json:"table_number"`
	DeliveryAddress     *string    `json:"delivery_address,omitempty"`
	Items               []BillItem `json:"items"`
	Subtotal            float64    `json:"subtotal"`
	CGSTAmount          float64    `json:"cgst_amount"`
	SGSTAmount          float64    `json:"sgst_amount"`
	GSTAmount           float64    `json:"gst_amount"`
	TotalAmount         float64    `json:"total_amount"`
	Status              string     `json:"status"`
	SpecialInstructions *string    `json:"special_instructions,omitempty"`
}

type BillItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
}

// PlaceOrder -> konversi cart menjadi order berharga beku. Seluruh
// langkah (validasi sesi, hitung total, buat order + item, kosongkan
// cart) berjalan dalam satu transaksi; kegagalan di tengah tidak boleh
// meninggalkan order setengah jadi atau cart yang tidak terkosongkan.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var req struct {
		TableID             uint    `json:"table_id" binding:"required"`
		TableSessionID      uint    `json:"table_session_id" binding:"required"`
		DeliveryAddress     *string `json:"delivery_address"`
		SpecialInstructions *string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		var session models.TableSession
		if err := tx.Where("user_id = ? AND is_active = ?", user.ID, true).
			First(&session).Error; err != nil {
			return ErrNoActiveSession
		}

		// Mencegah order terhadap sesi basi atau sesi orang lain
		if session.ID != req.TableSessionID || session.TableID != req.TableID {
			return ErrSessionMismatch
		}

		var cart models.Cart
		if err := tx.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			return ErrEmptyCart
		}
		var cartItems []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		var subtotal float64
		for _, it := range cartItems {
			subtotal += float64(it.Quantity) * it.PriceAtTime
		}
		cgst, sgst, gst := utils.CalculateGST(subtotal)

		order = models.Order{
			OrderNumber:         utils.GenerateOrderNumber(),
			UserID:              user.ID,
			TableID:             req.TableID,
			TableSessionID:      req.TableSessionID,
			Subtotal:            subtotal,
			CGSTAmount:          cgst,
			SGSTAmount:          sgst,
			GSTAmount:           gst,
			TotalAmount:         subtotal + gst,
			Status:              models.StatusPending,
			DeliveryAddress:     req.DeliveryAddress,
			SpecialInstructions: req.SpecialInstructions,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, it := range cartItems {
			orderItem := models.OrderItem{
				OrderID:     order.ID,
				MenuItemID:  it.MenuItemID,
				Quantity:    it.Quantity,
				PriceAtTime: it.PriceAtTime,
				TotalPrice:  float64(it.Quantity) * it.PriceAtTime,
				Status:      models.StatusPending,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})

	switch err {
	case nil:
	case ErrNoActiveSession, ErrSessionMismatch, ErrEmptyCart:
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.Preload("Items").First(&order, order.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s placed: user=%d total=%.2f", order.OrderNumber, user.ID, order.TotalAmount)
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetUserOrders -> semua order milik user
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var orders []models.Order
	if err := oc.DB.Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail order, hanya milik user sendiri
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrderBill -> bill untuk satu order milik user
func (oc *OrderController) GetOrderBill(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Preload("Items").Preload("Items.MenuItem").
		Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	var restaurant models.Restaurant
	oc.DB.First(&restaurant)
	restaurantName := restaurant.Name
	if restaurantName == "" {
		restaurantName = "Restaurant"
	}

	var table models.Table
	oc.DB.First(&table, order.TableID)

	items := make([]BillItem, 0, len(order.Items))
	for _, it := range order.Items {
		name := it.MenuItem.Name
		if name == "" {
			name = "Unknown Item"
		}
		items = append(items, BillItem{
			Name:     name,
			Quantity: it.Quantity,
			Price:    it.PriceAtTime,
			Total:    it.TotalPrice,
			Status:   it.Status,
		})
	}

	bill := Bill{
		OrderNumber:         order.OrderNumber,
		OrderDate:           order.CreatedAt.Format("2006-01-02 15:04:05"),
		RestaurantName:      restaurantName,
		RestaurantAddress:   restaurant.Address,
		CustomerName:        user.DisplayName(),
		CustomerPhone:       user.Phone,
		TableNumber:         table.TableNumber,
		DeliveryAddress:     order.DeliveryAddress,
		Items:               items,
		Subtotal:            order.Subtotal,
		CGSTAmount:          order.CGSTAmount,
		SGSTAmount:          order.SGSTAmount,
		GSTAmount:           order.GSTAmount,
		TotalAmount:         order.TotalAmount,
		Status:              order.Status,
		SpecialInstructions: order.SpecialInstructions,
	}

	utils.RespondJSON(c, http.StatusOK, "Order bill", bill)
}
