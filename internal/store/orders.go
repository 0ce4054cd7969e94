package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
)

const ordersTable = "orders"

var orderHeaders = []string{"id", "manager_id", "item_id", "quantity", "status", "created_at"}

// OrderRepo is the replenishment order table. Orders only ever change
// status; rows are never deleted.
type OrderRepo struct {
	files *storage.Store
}

func NewOrderRepo(files *storage.Store) (*OrderRepo, error) {
	if err := files.EnsureTable(ordersTable, orderHeaders); err != nil {
		return nil, err
	}
	return &OrderRepo{files: files}, nil
}

func (r *OrderRepo) Create(order *models.Order) error {
	id, err := r.files.NextID(ordersTable)
	if err != nil {
		return fmt.Errorf("allocate order id: %w", err)
	}
	order.ID = id
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	return r.files.AppendRow(ordersTable, encodeOrder(order))
}

func (r *OrderRepo) FindByID(id int64) (*models.Order, error) {
	rows, err := r.files.ReadAll(ordersTable)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if rid, ok := rowID(row); !ok || rid != id {
			continue
		}
		order, err := decodeOrder(row)
		if err != nil {
			return nil, rowError(ordersTable, i, err)
		}
		return order, nil
	}

	return nil, storage.ErrOrderNotFound
}

func (r *OrderRepo) FindAll() ([]models.Order, error) {
	return r.filter(func([]string) bool { return true })
}

func (r *OrderRepo) FindPending() ([]models.Order, error) {
	return r.filter(func(row []string) bool { return row[4] == models.OrderStatusPending })
}

func (r *OrderRepo) FindByManager(managerID int64) ([]models.Order, error) {
	want := strconv.FormatInt(managerID, 10)
	return r.filter(func(row []string) bool { return row[1] == want })
}

func (r *OrderRepo) filter(keep func(row []string) bool) ([]models.Order, error) {
	rows, err := r.files.ReadAll(ordersTable)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	for i, row := range rows {
		if err := checkWidth(row, len(orderHeaders)); err != nil {
			return nil, rowError(ordersTable, i, err)
		}
		if !keep(row) {
			continue
		}
		order, err := decodeOrder(row)
		if err != nil {
			return nil, rowError(ordersTable, i, err)
		}
		orders = append(orders, *order)
	}

	return orders, nil
}

// UpdateStatus patches only the status column.
func (r *OrderRepo) UpdateStatus(orderID int64, status string) error {
	return r.files.Rewrite(ordersTable, orderHeaders, func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			if id, ok := rowID(row); ok && id == orderID {
				if err := checkWidth(row, len(orderHeaders)); err != nil {
					return nil, rowError(ordersTable, i, err)
				}
				row[4] = status
				return rows, nil
			}
		}
		return nil, storage.ErrOrderNotFound
	})
}

func encodeOrder(order *models.Order) []string {
	return []string{
		strconv.FormatInt(order.ID, 10),
		strconv.FormatInt(order.ManagerID, 10),
		strconv.FormatInt(order.ItemID, 10),
		strconv.Itoa(order.Quantity),
		order.Status,
		order.CreatedAt.Format(timeLayout),
	}
}

func decodeOrder(row []string) (*models.Order, error) {
	if err := checkWidth(row, len(orderHeaders)); err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	managerID, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("manager_id: %w", err)
	}
	itemID, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("item_id: %w", err)
	}
	qty, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}
	createdAt, err := time.ParseInLocation(timeLayout, row[5], time.Local)
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}

	return &models.Order{
		ID:        id,
		ManagerID: managerID,
		ItemID:    itemID,
		Quantity:  qty,
		Status:    row[4],
		CreatedAt: createdAt,
	}, nil
}
