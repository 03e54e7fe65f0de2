package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/middlewares"
	"github.com/yeremiapane/table-order-app/models"
	"github.com/yeremiapane/table-order-app/utils"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// cartView adalah payload cart + total yang dihitung ulang per response.
type cartView struct {
	ID         uint              `json:"id"`
	UserID     uint              `json:"user_id"`
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	Subtotal   float64           `json:"subtotal"`
}

// getOrCreateCart -> tepat satu cart per user, dibuat saat akses pertama.
func getOrCreateCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		if createErr := db.Create(&cart).Error; createErr != nil {
			// Dua first-touch bersamaan: yang kalah menabrak unique
			// index user_id, ambil ulang baris milik pemenang.
			if refetchErr := db.Where("user_id = ?", userID).
				First(&cart).Error; refetchErr != nil {
				return nil, createErr
			}
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (cc *CartController) loadCartView(db *gorm.DB, cart *models.Cart) (*cartView, error) {
	var items []models.CartItem
	if err := db.Preload("MenuItem").
		Where("cart_id = ?", cart.ID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	cart.Items = items

	return &cartView{
		ID:         cart.ID,
		UserID:     cart.UserID,
		Items:      items,
		TotalItems: cart.TotalItems(),
		Subtotal:   cart.Subtotal(),
	}, nil
}

// GetCart -> isi cart user beserta total
func (cc *CartController) GetCart(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	cart, err := getOrCreateCart(cc.DB, user.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	view, err := cc.loadCartView(cc.DB, cart)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart contents", view)
}

// AddToCart -> tambah item; baris yang sudah ada diakumulasi quantity-nya
// dan snapshot harganya di-refresh ke harga menu sekarang.
func (cc *CartController) AddToCart(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var menuItem models.MenuItem
	if err := cc.DB.Where("id = ? AND is_available = ?", req.MenuItemID, true).
		First(&menuItem).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrItemUnavailable)
		return
	}

	var cart *models.Cart
	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = getOrCreateCart(tx, user.ID)
		if err != nil {
			return err
		}

		var existing models.CartItem
		err = tx.Where("cart_id = ? AND menu_item_id = ?", cart.ID, menuItem.ID).
			First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			line := models.CartItem{
				CartID:      cart.ID,
				MenuItemID:  menuItem.ID,
				Quantity:    req.Quantity,
				PriceAtTime: menuItem.Price,
			}
			return tx.Create(&line).Error
		}
		if err != nil {
			return err
		}

		existing.Quantity += req.Quantity
		existing.PriceAtTime = menuItem.Price
		return tx.Save(&existing).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	view, err := cc.loadCartView(cc.DB, cart)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", view)
}

// UpdateCartItem -> set quantity persis; quantity <= 0 menghapus baris
// (bukan error, itu perilaku delete yang didefinisikan).
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	itemID := c.Param("item_id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := getOrCreateCart(tx, user.ID)
		if err != nil {
			return err
		}

		var item models.CartItem
		if err := tx.Where("id = ? AND cart_id = ?", itemID, cart.ID).
			First(&item).Error; err != nil {
			return ErrCartItemNotFound
		}

		if req.Quantity <= 0 {
			return tx.Delete(&item).Error
		}
		item.Quantity = req.Quantity
		return tx.Save(&item).Error
	})
	if err == ErrCartItemNotFound {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart updated successfully", nil)
}

// RemoveCartItem -> hapus satu baris milik cart user
func (cc *CartController) RemoveCartItem(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	itemID := c.Param("item_id")

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := getOrCreateCart(tx, user.ID)
		if err != nil {
			return err
		}

		var item models.CartItem
		if err := tx.Where("id = ? AND cart_id = ?", itemID, cart.ID).
			First(&item).Error; err != nil {
			return ErrCartItemNotFound
		}
		return tx.Delete(&item).Error
	})
	if err == ErrCartItemNotFound {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", nil)
}

// ClearCart -> kosongkan cart; idempotent
func (cc *CartController) ClearCart(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := getOrCreateCart(tx, user.ID)
		if err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart cleared successfully", nil)
}
