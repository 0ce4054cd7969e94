package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriticalStockThreshold is the stock level below which an item is flagged
// for replenishment.
const CriticalStockThreshold = 10

// AnonymousClientID is the sentinel client every walk-in sale is recorded
// against.
const AnonymousClientID int64 = 1

type Item struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Dosage    string          `json:"dosage,omitempty"`
	Stock     int             `json:"stock"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (i *Item) IsCritical() bool {
	return i.Stock < CriticalStockThreshold
}

type Sale struct {
	ID           int64           `json:"id"`
	PharmacistID int64           `json:"pharmacist_id"`
	ClientID     int64           `json:"client_id"`
	ItemID       int64           `json:"item_id"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	SoldAt       time.Time       `json:"sold_at"`
}

type Order struct {
	ID        int64     `json:"id"`
	ManagerID int64     `json:"manager_id"`
	ItemID    int64     `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

const (
	OrderStatusPending   = "PENDING"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

type Client struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
}

// StockMovement is one entry of the append-only stock audit log. Delta is
// negative for sales and positive for replenishments.
type StockMovement struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	Delta      int       `json:"delta"`
	Kind       string    `json:"kind"`
	RecordedAt time.Time `json:"recorded_at"`
}

const (
	MovementSale          = "SALE"
	MovementReplenishment = "REPLENISHMENT"
	MovementAdjustment    = "ADJUSTMENT"
)

type Role string

const (
	RolePharmacist Role = "pharmacist"
	RoleManager    Role = "manager"
)

// User is a pharmacy staff account. Pharmacists and managers share the same
// record shape and live in two disjoint tables; Role tags which one a value
// came from.
type User struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Login     string `json:"login"`
	Password  string `json:"-"`
	Role      Role   `json:"role"`
}
