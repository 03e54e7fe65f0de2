package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/models"
)

// seedOrder menulis order + item langsung ke DB dengan status yang
// diminta, supaya test admin tidak perlu melewati seluruh flow customer.
func seedOrder(t *testing.T, db *gorm.DB, userID uint, orderStatus string, itemStatuses ...string) *models.Order {
	t.Helper()

	table := seedTable(t, db, fmt.Sprintf("AT%d", userID))
	session := models.TableSession{TableID: table.ID, UserID: userID, IsActive: true}
	require.NoError(t, db.Create(&session).Error)

	item := seedMenuItem(t, db, fmt.Sprintf("Dish %d", userID), 100, "Mains")

	order := models.Order{
		OrderNumber:    fmt.Sprintf("ORD-TEST%04d", userID),
		UserID:         userID,
		TableID:        table.ID,
		TableSessionID: session.ID,
		Subtotal:       100,
		CGSTAmount:     9,
		SGSTAmount:     9,
		GSTAmount:      18,
		TotalAmount:    118,
		Status:         orderStatus,
	}
	require.NoError(t, db.Create(&order).Error)

	for _, st := range itemStatuses {
		line := models.OrderItem{
			OrderID:     order.ID,
			MenuItemID:  item.ID,
			Quantity:    1,
			PriceAtTime: 100,
			TotalPrice:  100,
			Status:      st,
		}
		require.NoError(t, db.Create(&line).Error)
	}
	return &order
}

func orderStatusOf(t *testing.T, db *gorm.DB, orderID uint) string {
	t.Helper()
	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	return order.Status
}

func itemStatusesOf(t *testing.T, db *gorm.DB, orderID uint) []string {
	t.Helper()
	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", orderID).Order("id asc").Find(&items).Error)
	statuses := make([]string, 0, len(items))
	for _, it := range items {
		statuses = append(statuses, it.Status)
	}
	return statuses
}

func TestAcceptOrder(t *testing.T) {
	db := setupTestDB(t, "adminaccept")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000001")
	token := tokenFor(t, staff.Phone)

	order := seedOrder(t, db, staff.ID, models.StatusPending,
		models.StatusPending, models.StatusPending)

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%d/accept", order.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, models.StatusAccepted, orderStatusOf(t, db, order.ID))
	assert.Equal(t, []string{models.StatusAccepted, models.StatusAccepted}, itemStatusesOf(t, db, order.ID))

	// Accept kedua kali ditolak: order sudah bukan pending
	w = doRequest(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%d/accept", order.ID), nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkOrderReadySkipsCancelledItems(t *testing.T) {
	db := setupTestDB(t, "adminready")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000002")
	token := tokenFor(t, staff.Phone)

	order := seedOrder(t, db, staff.ID, models.StatusPreparing,
		models.StatusPreparing, models.StatusCancelled, models.StatusAccepted)

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%d/ready", order.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, models.StatusReady, orderStatusOf(t, db, order.ID))
	assert.Equal(t,
		[]string{models.StatusReady, models.StatusCancelled, models.StatusReady},
		itemStatusesOf(t, db, order.ID))
}

func TestMarkOrderReadyRequiresAcceptedOrPreparing(t *testing.T) {
	db := setupTestDB(t, "adminreadyguard")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000003")
	token := tokenFor(t, staff.Phone)

	order := seedOrder(t, db, staff.ID, models.StatusPending, models.StatusPending)

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%d/ready", order.ID), nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.StatusPending, orderStatusOf(t, db, order.ID))
}

func TestDeliverOrder(t *testing.T) {
	db := setupTestDB(t, "admindeliver")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000004")
	token := tokenFor(t, staff.Phone)

	order := seedOrder(t, db, staff.ID, models.StatusReady,
		models.StatusReady, models.StatusCancelled)

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%d/deliver", order.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, models.StatusDelivered, orderStatusOf(t, db, order.ID))
	assert.Equal(t,
		[]string{models.StatusDelivered, models.StatusCancelled},
		itemStatusesOf(t, db, order.ID))

	// Deliver hanya dari ready
	w = doRequest(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%d/deliver", order.ID), nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusDirectOverride(t *testing.T) {
	db := setupTestDB(t, "adminoverride")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000005")
	token := tokenFor(t, staff.Phone)

	order := seedOrder(t, db, staff.ID, models.StatusPending, models.StatusPending)

	// Tanpa guard transisi: pending boleh langsung ke delivered
	notes := "walk-in pickup"
	w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", order.ID), map[string]interface{}{
		"status":      models.StatusDelivered,
		"admin_notes": notes,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusDelivered, orderStatusOf(t, db, order.ID))

	var fresh models.Order
	require.NoError(t, db.First(&fresh, order.ID).Error)
	require.NotNil(t, fresh.AdminNotes)
	assert.Equal(t, notes, *fresh.AdminNotes)

	// Status di luar domain ditolak
	w = doRequest(t, r, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", order.ID), map[string]interface{}{
		"status": "teleported",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderItemStatusRollsUp(t *testing.T) {
	db := setupTestDB(t, "adminrollup")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000006")
	token := tokenFor(t, staff.Phone)

	order := seedOrder(t, db, staff.ID, models.StatusAccepted,
		models.StatusReady, models.StatusReady, models.StatusPreparing)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("id asc").Find(&items).Error)

	// Item terakhir jadi ready: semua ready => order ready
	w := doRequest(t, r, http.MethodPatch,
		fmt.Sprintf("/admin/orders/%d/items/%d/status", order.ID, items[2].ID),
		map[string]interface{}{"status": models.StatusReady}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusReady, orderStatusOf(t, db, order.ID))
}

func TestUpdateOrderItemStatusAnyPreparingWins(t *testing.T) {
	db := setupTestDB(t, "adminrolluppreparing")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000007")
	token := tokenFor(t, staff.Phone)

	order := seedOrder(t, db, staff.ID, models.StatusAccepted,
		models.StatusPending, models.StatusAccepted, models.StatusAccepted)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("id asc").Find(&items).Error)

	// Satu item preparing cukup untuk menarik order ke preparing
	w := doRequest(t, r, http.MethodPatch,
		fmt.Sprintf("/admin/orders/%d/items/%d/status", order.ID, items[2].ID),
		map[string]interface{}{"status": models.StatusPreparing}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusPreparing, orderStatusOf(t, db, order.ID))
}

func TestUpdateOrderItemStatusNoRuleLeavesOrderUntouched(t *testing.T) {
	db := setupTestDB(t, "adminrollupnone")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000008")
	token := tokenFor(t, staff.Phone)

	order := seedOrder(t, db, staff.ID, models.StatusAccepted,
		models.StatusAccepted, models.StatusAccepted)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("id asc").Find(&items).Error)

	// pending + accepted tidak memenuhi rule manapun: status order tetap
	w := doRequest(t, r, http.MethodPatch,
		fmt.Sprintf("/admin/orders/%d/items/%d/status", order.ID, items[0].ID),
		map[string]interface{}{"status": models.StatusPending}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusAccepted, orderStatusOf(t, db, order.ID))

	// Item di order lain tidak bisa dialamatkan lewat order ini
	other := seedOrder(t, db, staff.ID+100, models.StatusPending, models.StatusPending)
	var otherItems []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", other.ID).Find(&otherItems).Error)

	w = doRequest(t, r, http.MethodPatch,
		fmt.Sprintf("/admin/orders/%d/items/%d/status", order.ID, otherItems[0].ID),
		map[string]interface{}{"status": models.StatusReady}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminOrderListings(t *testing.T) {
	db := setupTestDB(t, "adminlistings")
	r := newRouter(db)

	staff := seedUser(t, db, "+91-9400000009")
	token := tokenFor(t, staff.Phone)

	pending := seedOrder(t, db, staff.ID, models.StatusPending, models.StatusPending)
	seedOrder(t, db, staff.ID+1, models.StatusDelivered, models.StatusDelivered)

	w := doRequest(t, r, http.MethodGet, "/admin/orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	all := parseBody(t, w)["data"].([]interface{})
	assert.Len(t, all, 2)

	w = doRequest(t, r, http.MethodGet, "/admin/orders/pending", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	queue := parseBody(t, w)["data"].([]interface{})
	require.Len(t, queue, 1)
	assert.Equal(t, float64(pending.ID), queue[0].(map[string]interface{})["id"])

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/admin/orders/%d/items", pending.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/admin/orders/424242", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
