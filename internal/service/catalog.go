package service

import (
	"fmt"
	"strings"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/shopspring/decimal"
)

// Catalog manages the item table and keeps the stock audit log in step with
// every stock change.
type Catalog struct {
	items     ItemStore
	movements MovementStore
}

func NewCatalog(items ItemStore, movements MovementStore) *Catalog {
	return &Catalog{items: items, movements: movements}
}

// AddItem validates and creates a catalog item. A positive initial stock is
// recorded as a replenishment movement so the audit log accounts for every
// unit from day one.
func (s *Catalog) AddItem(name, dosage string, initialStock int, unitPrice decimal.Decimal) (*models.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if unitPrice.Sign() <= 0 {
		return nil, ErrInvalidPrice
	}
	if initialStock < 0 {
		return nil, ErrNegativeStock
	}

	item := &models.Item{
		Name:      name,
		Dosage:    dosage,
		Stock:     initialStock,
		UnitPrice: unitPrice,
	}
	if err := s.items.Create(item); err != nil {
		return nil, err
	}

	if initialStock > 0 {
		movement := &models.StockMovement{
			ItemID: item.ID,
			Delta:  initialStock,
			Kind:   models.MovementReplenishment,
		}
		if err := s.movements.Create(movement); err != nil {
			return nil, fmt.Errorf("record initial stock movement: %w", err)
		}
	}

	return item, nil
}

// AdjustStockDown removes qty units from an item's stock and logs a SALE
// movement. The returned flag reports whether the item ended up below the
// critical threshold; it is advisory, not an error.
func (s *Catalog) AdjustStockDown(itemID int64, qty int) (critical bool, err error) {
	if qty <= 0 {
		return false, ErrInvalidQuantity
	}

	item, err := s.items.FindByID(itemID)
	if err != nil {
		return false, err
	}
	if item.Stock < qty {
		return false, storage.ErrInsufficientStock
	}

	newStock := item.Stock - qty
	if err := s.items.UpdateStock(itemID, newStock); err != nil {
		return false, err
	}

	movement := &models.StockMovement{
		ItemID: itemID,
		Delta:  -qty,
		Kind:   models.MovementSale,
	}
	if err := s.movements.Create(movement); err != nil {
		return false, fmt.Errorf("record sale movement: %w", err)
	}

	return newStock < models.CriticalStockThreshold, nil
}

// AdjustStockUp adds qty units to an item's stock and logs a REPLENISHMENT
// movement.
func (s *Catalog) AdjustStockUp(itemID int64, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	item, err := s.items.FindByID(itemID)
	if err != nil {
		return err
	}

	if err := s.items.UpdateStock(itemID, item.Stock+qty); err != nil {
		return err
	}

	movement := &models.StockMovement{
		ItemID: itemID,
		Delta:  qty,
		Kind:   models.MovementReplenishment,
	}
	if err := s.movements.Create(movement); err != nil {
		return fmt.Errorf("record replenishment movement: %w", err)
	}

	return nil
}

// CorrectStock sets an item's stock to a counted value, as after a physical
// inventory, and logs the difference as an ADJUSTMENT movement. Setting the
// stock to its current value is a no-op.
func (s *Catalog) CorrectStock(itemID int64, newStock int) error {
	if newStock < 0 {
		return ErrNegativeStock
	}

	item, err := s.items.FindByID(itemID)
	if err != nil {
		return err
	}
	if newStock == item.Stock {
		return nil
	}

	if err := s.items.UpdateStock(itemID, newStock); err != nil {
		return err
	}

	movement := &models.StockMovement{
		ItemID: itemID,
		Delta:  newStock - item.Stock,
		Kind:   models.MovementAdjustment,
	}
	if err := s.movements.Create(movement); err != nil {
		return fmt.Errorf("record adjustment movement: %w", err)
	}

	return nil
}

func (s *Catalog) GetItem(id int64) (*models.Item, error) {
	return s.items.FindByID(id)
}

func (s *Catalog) ListItems() ([]models.Item, error) {
	return s.items.FindAll()
}

func (s *Catalog) SearchItems(name string) ([]models.Item, error) {
	return s.items.SearchByName(name)
}

// UpdateItem rewrites an item's row. The sale ledger is untouched: amounts
// recorded before a price change keep their snapshotted totals.
func (s *Catalog) UpdateItem(item *models.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrNameRequired
	}
	if item.UnitPrice.Sign() <= 0 {
		return ErrInvalidPrice
	}
	if item.Stock < 0 {
		return ErrNegativeStock
	}

	return s.items.Update(item)
}

// CriticalItems lists every item below the critical threshold, in catalog
// file order.
func (s *Catalog) CriticalItems() ([]models.Item, error) {
	return s.items.FindCritical()
}

// ItemHistory returns the movement log for one item, oldest first.
func (s *Catalog) ItemHistory(itemID int64) ([]models.StockMovement, error) {
	if _, err := s.items.FindByID(itemID); err != nil {
		return nil, err
	}
	return s.movements.FindByItem(itemID)
}
