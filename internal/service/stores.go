package service

import (
	"github.com/safar/pharmacy-store/internal/models"
	"github.com/shopspring/decimal"
)

// The services depend on these interfaces rather than on the flat-file
// repositories directly, so the whole-table rewrite store can be swapped for
// an indexed one without touching any business rule.

type ItemStore interface {
	Create(item *models.Item) error
	FindByID(id int64) (*models.Item, error)
	FindAll() ([]models.Item, error)
	SearchByName(name string) ([]models.Item, error)
	FindCritical() ([]models.Item, error)
	Update(item *models.Item) error
	UpdateStock(itemID int64, stock int) error
}

type MovementStore interface {
	Create(movement *models.StockMovement) error
	FindByItem(itemID int64) ([]models.StockMovement, error)
}

type SaleStore interface {
	Create(sale *models.Sale) error
	FindByID(id int64) (*models.Sale, error)
	FindAll() ([]models.Sale, error)
	FindByPharmacist(pharmacistID int64) ([]models.Sale, error)
	FindToday() ([]models.Sale, error)
	TotalRevenue() (decimal.Decimal, error)
	TodayRevenue() (decimal.Decimal, error)
	Delete(id int64) error
}

type OrderStore interface {
	Create(order *models.Order) error
	FindByID(id int64) (*models.Order, error)
	FindAll() ([]models.Order, error)
	FindPending() ([]models.Order, error)
	FindByManager(managerID int64) ([]models.Order, error)
	UpdateStatus(orderID int64, status string) error
}

type ClientStore interface {
	Create(client *models.Client) error
	FindByID(id int64) (*models.Client, error)
	FindAll() ([]models.Client, error)
	SearchByName(name string) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id int64) error
}

type UserStore interface {
	Create(user *models.User) error
	FindByID(id int64) (*models.User, error)
	FindByLogin(login string) (*models.User, error)
	Authenticate(login, password string) (*models.User, error)
}
