package models

import "time"

// Status domain dipakai bersama oleh Order dan OrderItem.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	OrderNumber    string       `gorm:"type:varchar(20);unique;not null;index" json:"order_number"`
	UserID         uint         `gorm:"not null;index" json:"user_id"`
	User           User         `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TableID        uint         `gorm:"not null" json:"table_id"`
	Table          Table        `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TableSessionID uint         `gorm:"not null" json:"table_session_id"`
	TableSession   TableSession `gorm:"foreignKey:TableSessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	// Nilai moneter dibekukan saat order dibuat; perubahan harga menu
	// setelahnya tidak mengubah order.
	Subtotal            float64     `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	CGSTAmount          float64     `gorm:"type:decimal(10,2);not null" json:"cgst_amount"`
	SGSTAmount          float64     `gorm:"type:decimal(10,2);not null" json:"sgst_amount"`
	GSTAmount           float64     `gorm:"type:decimal(10,2);not null" json:"gst_amount"`
	TotalAmount         float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status              string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DeliveryAddress     *string     `gorm:"type:text" json:"delivery_address,omitempty"`
	SpecialInstructions *string     `gorm:"type:text" json:"special_instructions,omitempty"`
	AdminNotes          *string     `gorm:"type:text" json:"admin_notes,omitempty"`
	Items               []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt           time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"not null" json:"updated_at"`
}

// DeriveOrderStatus menurunkan status agregat order dari status item-itemnya.
// Aturan dievaluasi berurutan, aturan pertama yang cocok menang:
//  1. semua item ready        => ready
//  2. ada item preparing      => preparing
//  3. semua item accepted/preparing/ready => accepted
//
// Jika tidak ada aturan yang cocok, status order dibiarkan (ok=false).
// Rollup tidak pernah menghasilkan pending, delivered, atau cancelled;
// transisi itu hanya lewat aksi staff langsung pada order.
func DeriveOrderStatus(items []OrderItem) (status string, ok bool) {
	if len(items) == 0 {
		return "", false
	}

	allReady := true
	anyPreparing := false
	allInProgress := true
	for _, it := range items {
		if it.Status != StatusReady {
			allReady = false
		}
		if it.Status == StatusPreparing {
			anyPreparing = true
		}
		switch it.Status {
		case StatusAccepted, StatusPreparing, StatusReady:
		default:
			allInProgress = false
		}
	}

	switch {
	case allReady:
		return StatusReady, true
	case anyPreparing:
		return StatusPreparing, true
	case allInProgress:
		return StatusAccepted, true
	}
	return "", false
}
