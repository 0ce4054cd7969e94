package service

import (
	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/shopspring/decimal"
)

// Sales records and cancels sales, keeping the catalog stock in step via
// the Catalog service.
type Sales struct {
	sales   SaleStore
	clients ClientStore
	catalog *Catalog
}

func NewSales(sales SaleStore, clients ClientStore, catalog *Catalog) *Sales {
	return &Sales{sales: sales, clients: clients, catalog: catalog}
}

// SaleReceipt reports the outcome of RecordSale. The sale row is committed
// whenever a receipt is returned; StockUpdated is false when the stock
// decrement failed afterwards, leaving the ledger and the catalog out of
// sync (there is no rollback). CriticalStock warns that the item dropped
// below the critical threshold.
type SaleReceipt struct {
	Sale          models.Sale
	StockUpdated  bool
	StockError    error
	CriticalStock bool
}

// CancelResult reports the outcome of CancelSale. The sale row is deleted
// whenever a result is returned, even if restoring the stock failed first.
type CancelResult struct {
	StockRestored bool
	StockError    error
}

// RecordSale validates the request, snapshots the total amount from the
// current unit price, persists the sale, then decrements stock. A client id
// of zero or below means a walk-in sale and is normalized to the sentinel
// client; explicit client ids must exist.
func (s *Sales) RecordSale(pharmacistID, clientID, itemID int64, qty int) (*SaleReceipt, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.catalog.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.Stock < qty {
		return nil, storage.ErrInsufficientStock
	}

	if clientID > 0 {
		if _, err := s.clients.FindByID(clientID); err != nil {
			return nil, err
		}
	} else {
		clientID = models.AnonymousClientID
	}

	sale := &models.Sale{
		PharmacistID: pharmacistID,
		ClientID:     clientID,
		ItemID:       itemID,
		Quantity:     qty,
		TotalAmount:  item.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}
	if err := s.sales.Create(sale); err != nil {
		return nil, err
	}

	receipt := &SaleReceipt{Sale: *sale, StockUpdated: true}
	critical, err := s.catalog.AdjustStockDown(itemID, qty)
	if err != nil {
		receipt.StockUpdated = false
		receipt.StockError = err
		return receipt, nil
	}
	receipt.CriticalStock = critical

	return receipt, nil
}

// CancelSale restores the sold quantity to stock and hard-deletes the sale
// row. A failed restore is reported on the result; the deletion happens
// regardless.
func (s *Sales) CancelSale(saleID int64) (*CancelResult, error) {
	sale, err := s.sales.FindByID(saleID)
	if err != nil {
		return nil, err
	}

	result := &CancelResult{StockRestored: true}
	if err := s.catalog.AdjustStockUp(sale.ItemID, sale.Quantity); err != nil {
		result.StockRestored = false
		result.StockError = err
	}

	if err := s.sales.Delete(saleID); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Sales) GetSale(id int64) (*models.Sale, error) {
	return s.sales.FindByID(id)
}

func (s *Sales) AllSales() ([]models.Sale, error) {
	return s.sales.FindAll()
}

func (s *Sales) SalesByPharmacist(pharmacistID int64) ([]models.Sale, error) {
	return s.sales.FindByPharmacist(pharmacistID)
}

func (s *Sales) SalesToday() ([]models.Sale, error) {
	return s.sales.FindToday()
}

func (s *Sales) TotalRevenue() (decimal.Decimal, error) {
	return s.sales.TotalRevenue()
}

func (s *Sales) TodayRevenue() (decimal.Decimal, error) {
	return s.sales.TodayRevenue()
}
