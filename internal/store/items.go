package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/shopspring/decimal"
)

const itemsTable = "items"

var itemHeaders = []string{"id", "name", "dosage", "stock", "unit_price"}

// ItemRepo is the catalog table. Items are mutated in place and never
// deleted.
type ItemRepo struct {
	files *storage.Store
}

func NewItemRepo(files *storage.Store) (*ItemRepo, error) {
	if err := files.EnsureTable(itemsTable, itemHeaders); err != nil {
		return nil, err
	}
	return &ItemRepo{files: files}, nil
}

func (r *ItemRepo) Create(item *models.Item) error {
	id, err := r.files.NextID(itemsTable)
	if err != nil {
		return fmt.Errorf("allocate item id: %w", err)
	}
	item.ID = id

	return r.files.AppendRow(itemsTable, encodeItem(item))
}

func (r *ItemRepo) FindByID(id int64) (*models.Item, error) {
	rows, err := r.files.ReadAll(itemsTable)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if rid, ok := rowID(row); !ok || rid != id {
			continue
		}
		item, err := decodeItem(row)
		if err != nil {
			return nil, rowError(itemsTable, i, err)
		}
		return item, nil
	}

	return nil, storage.ErrItemNotFound
}

func (r *ItemRepo) FindAll() ([]models.Item, error) {
	return r.filter(func(*models.Item) bool { return true })
}

// SearchByName matches case-insensitively on a name substring.
func (r *ItemRepo) SearchByName(name string) ([]models.Item, error) {
	needle := strings.ToLower(name)
	return r.filter(func(item *models.Item) bool {
		return strings.Contains(strings.ToLower(item.Name), needle)
	})
}

func (r *ItemRepo) FindCritical() ([]models.Item, error) {
	return r.filter(func(item *models.Item) bool { return item.IsCritical() })
}

func (r *ItemRepo) filter(keep func(*models.Item) bool) ([]models.Item, error) {
	rows, err := r.files.ReadAll(itemsTable)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	for i, row := range rows {
		item, err := decodeItem(row)
		if err != nil {
			return nil, rowError(itemsTable, i, err)
		}
		if keep(item) {
			items = append(items, *item)
		}
	}

	return items, nil
}

func (r *ItemRepo) Update(item *models.Item) error {
	return r.files.Rewrite(itemsTable, itemHeaders, func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			if id, ok := rowID(row); ok && id == item.ID {
				rows[i] = encodeItem(item)
				return rows, nil
			}
		}
		return nil, storage.ErrItemNotFound
	})
}

// UpdateStock patches only the stock column so the other fields are never
// re-encoded.
func (r *ItemRepo) UpdateStock(itemID int64, stock int) error {
	return r.files.Rewrite(itemsTable, itemHeaders, func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			if id, ok := rowID(row); ok && id == itemID {
				if err := checkWidth(row, len(itemHeaders)); err != nil {
					return nil, rowError(itemsTable, i, err)
				}
				row[3] = strconv.Itoa(stock)
				return rows, nil
			}
		}
		return nil, storage.ErrItemNotFound
	})
}

func encodeItem(item *models.Item) []string {
	return []string{
		strconv.FormatInt(item.ID, 10),
		item.Name,
		item.Dosage,
		strconv.Itoa(item.Stock),
		item.UnitPrice.String(),
	}
}

func decodeItem(row []string) (*models.Item, error) {
	if err := checkWidth(row, len(itemHeaders)); err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	stock, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, fmt.Errorf("stock: %w", err)
	}
	price, err := decimal.NewFromString(row[4])
	if err != nil {
		return nil, fmt.Errorf("unit_price: %w", err)
	}

	return &models.Item{
		ID:        id,
		Name:      row[1],
		Dosage:    row[2],
		Stock:     stock,
		UnitPrice: price,
	}, nil
}
