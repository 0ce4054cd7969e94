package service

import (
	"github.com/safar/pharmacy-store/internal/models"
)

// Ordering drives the replenishment order lifecycle:
// PENDING -> DELIVERED on receipt, PENDING -> CANCELLED on cancellation.
// Both end states are terminal.
type Ordering struct {
	orders  OrderStore
	catalog *Catalog
}

func NewOrdering(orders OrderStore, catalog *Catalog) *Ordering {
	return &Ordering{orders: orders, catalog: catalog}
}

// ReceiveResult reports the outcome of ReceiveOrder. The order is DELIVERED
// whenever a result is returned; StockUpdated is false when the stock
// increment failed afterwards (the status is not reverted).
type ReceiveResult struct {
	Order        models.Order
	StockUpdated bool
	StockError   error
}

func (s *Ordering) CreateOrder(managerID, itemID int64, qty int) (*models.Order, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.catalog.GetItem(itemID); err != nil {
		return nil, err
	}

	order := &models.Order{
		ManagerID: managerID,
		ItemID:    itemID,
		Quantity:  qty,
		Status:    models.OrderStatusPending,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	return order, nil
}

// ReceiveOrder marks a pending order delivered, then adds its quantity to
// the item's stock. Receiving the same order twice fails on the status
// check, so stock is never double-incremented.
func (s *Ordering) ReceiveOrder(orderID int64) (*ReceiveResult, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsPending() {
		return nil, ErrOrderNotPending
	}

	if err := s.orders.UpdateStatus(orderID, models.OrderStatusDelivered); err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusDelivered

	result := &ReceiveResult{Order: *order, StockUpdated: true}
	if err := s.catalog.AdjustStockUp(order.ItemID, order.Quantity); err != nil {
		result.StockUpdated = false
		result.StockError = err
	}

	return result, nil
}

// CancelOrder moves a pending order to CANCELLED. Stock is untouched: the
// ordered units never arrived.
func (s *Ordering) CancelOrder(orderID int64) error {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return err
	}
	if !order.IsPending() {
		return ErrOrderNotPending
	}

	return s.orders.UpdateStatus(orderID, models.OrderStatusCancelled)
}

func (s *Ordering) GetOrder(id int64) (*models.Order, error) {
	return s.orders.FindByID(id)
}

func (s *Ordering) AllOrders() ([]models.Order, error) {
	return s.orders.FindAll()
}

func (s *Ordering) PendingOrders() ([]models.Order, error) {
	return s.orders.FindPending()
}

func (s *Ordering) OrdersByManager(managerID int64) ([]models.Order, error) {
	return s.orders.FindByManager(managerID)
}
