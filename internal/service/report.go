package service

import (
	"github.com/safar/pharmacy-store/internal/models"
	"github.com/shopspring/decimal"
)

// Report is the aggregated state of the pharmacy at one point in time.
// Formatting is the caller's business.
type Report struct {
	TotalRevenue  decimal.Decimal
	TodayRevenue  decimal.Decimal
	SalesCount    int
	SalesToday    int
	CatalogSize   int
	CriticalItems []models.Item
	PendingOrders int
	TotalOrders   int
}

type Reporting struct {
	catalog  *Catalog
	sales    *Sales
	ordering *Ordering
}

func NewReporting(catalog *Catalog, sales *Sales, ordering *Ordering) *Reporting {
	return &Reporting{catalog: catalog, sales: sales, ordering: ordering}
}

func (s *Reporting) Summary() (*Report, error) {
	report := &Report{}

	var err error
	if report.TotalRevenue, err = s.sales.TotalRevenue(); err != nil {
		return nil, err
	}
	if report.TodayRevenue, err = s.sales.TodayRevenue(); err != nil {
		return nil, err
	}

	allSales, err := s.sales.AllSales()
	if err != nil {
		return nil, err
	}
	report.SalesCount = len(allSales)

	todaySales, err := s.sales.SalesToday()
	if err != nil {
		return nil, err
	}
	report.SalesToday = len(todaySales)

	items, err := s.catalog.ListItems()
	if err != nil {
		return nil, err
	}
	report.CatalogSize = len(items)

	if report.CriticalItems, err = s.catalog.CriticalItems(); err != nil {
		return nil, err
	}

	pending, err := s.ordering.PendingOrders()
	if err != nil {
		return nil, err
	}
	report.PendingOrders = len(pending)

	orders, err := s.ordering.AllOrders()
	if err != nil {
		return nil, err
	}
	report.TotalOrders = len(orders)

	return report, nil
}
