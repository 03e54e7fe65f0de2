package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/controllers"
	"github.com/yeremiapane/table-order-app/middlewares"
	"github.com/yeremiapane/table-order-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController(db, services.NewSMSSenderFromConfig())
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	otpLimiter := middlewares.NewOTPRateLimiter(5)
	auth := r.Group("/auth")
	auth.Use(otpLimiter.Limit())
	{
		auth.POST("/phone-login", authCtrl.PhoneLogin)
		auth.POST("/verify-otp", authCtrl.VerifyOTP)
	}

	// Katalog bisa dilihat tanpa login
	r.GET("/menu/restaurant", menuCtrl.GetRestaurant)
	r.GET("/menu/items", menuCtrl.GetMenuItems)
	r.GET("/menu/items/:item_id", menuCtrl.GetMenuItemByID)
	r.GET("/menu/categories", menuCtrl.GetCategories)

	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/available", tableCtrl.GetAvailableTables)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(db))
	{
		authed.GET("/auth/me", authCtrl.GetProfile)
		authed.PATCH("/auth/me", authCtrl.UpdateProfile)

		// CART
		authed.GET("/cart", cartCtrl.GetCart)
		authed.POST("/cart/add", cartCtrl.AddToCart)
		authed.PUT("/cart/update/:item_id", cartCtrl.UpdateCartItem)
		authed.DELETE("/cart/remove/:item_id", cartCtrl.RemoveCartItem)
		authed.DELETE("/cart/clear", cartCtrl.ClearCart)

		// TABLE SESSIONS
		authed.GET("/tables/session/current", tableCtrl.GetCurrentSession)
		authed.GET("/tables/:table_number", tableCtrl.GetTableByNumber)
		authed.POST("/tables/:table_number/start-session", tableCtrl.StartSession)
		authed.POST("/tables/:table_number/end-session", tableCtrl.EndSession)
		authed.POST("/tables/qr/:table_number/scan", tableCtrl.ScanTable)

		// ORDERS (customer)
		authed.POST("/orders/place", orderCtrl.PlaceOrder)
		authed.GET("/orders", orderCtrl.GetUserOrders)
		authed.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		authed.GET("/orders/:order_id/bill", orderCtrl.GetOrderBill)
	}

	// ADMIN (staff surface)
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(db), middlewares.AdminOnly())
	{
		admin.GET("/orders", adminCtrl.GetAllOrders)
		admin.GET("/orders/pending", adminCtrl.GetPendingOrders)
		admin.GET("/orders/:order_id", adminCtrl.GetOrderDetails)
		admin.GET("/orders/:order_id/items", adminCtrl.GetOrderItems)
		admin.PATCH("/orders/:order_id/status", adminCtrl.UpdateOrderStatus)
		admin.PATCH("/orders/:order_id/items/:item_id/status", adminCtrl.UpdateOrderItemStatus)
		admin.POST("/orders/:order_id/accept", adminCtrl.AcceptOrder)
		admin.POST("/orders/:order_id/ready", adminCtrl.MarkOrderReady)
		admin.POST("/orders/:order_id/deliver", adminCtrl.DeliverOrder)
	}

	return r
}
