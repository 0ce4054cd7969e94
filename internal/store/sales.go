package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/shopspring/decimal"
)

const salesTable = "sales"

var saleHeaders = []string{"id", "pharmacist_id", "client_id", "item_id", "quantity", "total_amount", "sold_at"}

// SaleRepo is the sales ledger. Sales are create-only except for the hard
// delete used by cancellation.
type SaleRepo struct {
	files *storage.Store
}

func NewSaleRepo(files *storage.Store) (*SaleRepo, error) {
	if err := files.EnsureTable(salesTable, saleHeaders); err != nil {
		return nil, err
	}
	return &SaleRepo{files: files}, nil
}

func (r *SaleRepo) Create(sale *models.Sale) error {
	id, err := r.files.NextID(salesTable)
	if err != nil {
		return fmt.Errorf("allocate sale id: %w", err)
	}
	sale.ID = id
	if sale.SoldAt.IsZero() {
		sale.SoldAt = time.Now()
	}

	return r.files.AppendRow(salesTable, encodeSale(sale))
}

func (r *SaleRepo) FindByID(id int64) (*models.Sale, error) {
	rows, err := r.files.ReadAll(salesTable)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if rid, ok := rowID(row); !ok || rid != id {
			continue
		}
		sale, err := decodeSale(row)
		if err != nil {
			return nil, rowError(salesTable, i, err)
		}
		return sale, nil
	}

	return nil, storage.ErrSaleNotFound
}

func (r *SaleRepo) FindAll() ([]models.Sale, error) {
	return r.filter(func([]string) bool { return true })
}

func (r *SaleRepo) FindByPharmacist(pharmacistID int64) ([]models.Sale, error) {
	want := strconv.FormatInt(pharmacistID, 10)
	return r.filter(func(row []string) bool { return row[1] == want })
}

// FindToday matches on the date prefix of the stored timestamp string, the
// same way the table would be grepped by hand.
func (r *SaleRepo) FindToday() ([]models.Sale, error) {
	prefix := time.Now().Format(dateLayout)
	return r.filter(func(row []string) bool { return strings.HasPrefix(row[6], prefix) })
}

func (r *SaleRepo) filter(keep func(row []string) bool) ([]models.Sale, error) {
	rows, err := r.files.ReadAll(salesTable)
	if err != nil {
		return nil, err
	}

	var sales []models.Sale
	for i, row := range rows {
		if err := checkWidth(row, len(saleHeaders)); err != nil {
			return nil, rowError(salesTable, i, err)
		}
		if !keep(row) {
			continue
		}
		sale, err := decodeSale(row)
		if err != nil {
			return nil, rowError(salesTable, i, err)
		}
		sales = append(sales, *sale)
	}

	return sales, nil
}

// TotalRevenue sums the snapshotted amount of every sale on file.
func (r *SaleRepo) TotalRevenue() (decimal.Decimal, error) {
	sales, err := r.FindAll()
	if err != nil {
		return decimal.Zero, err
	}
	return sumAmounts(sales), nil
}

func (r *SaleRepo) TodayRevenue() (decimal.Decimal, error) {
	sales, err := r.FindToday()
	if err != nil {
		return decimal.Zero, err
	}
	return sumAmounts(sales), nil
}

func sumAmounts(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.TotalAmount)
	}
	return total
}

func (r *SaleRepo) Delete(id int64) error {
	return r.files.Rewrite(salesTable, saleHeaders, func(rows [][]string) ([][]string, error) {
		kept := rows[:0]
		found := false
		for _, row := range rows {
			if rid, ok := rowID(row); ok && rid == id {
				found = true
				continue
			}
			kept = append(kept, row)
		}
		if !found {
			return nil, storage.ErrSaleNotFound
		}
		return kept, nil
	})
}

func encodeSale(sale *models.Sale) []string {
	return []string{
		strconv.FormatInt(sale.ID, 10),
		strconv.FormatInt(sale.PharmacistID, 10),
		strconv.FormatInt(sale.ClientID, 10),
		strconv.FormatInt(sale.ItemID, 10),
		strconv.Itoa(sale.Quantity),
		sale.TotalAmount.String(),
		sale.SoldAt.Format(timeLayout),
	}
}

func decodeSale(row []string) (*models.Sale, error) {
	if err := checkWidth(row, len(saleHeaders)); err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	pharmacistID, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("pharmacist_id: %w", err)
	}
	clientID, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("client_id: %w", err)
	}
	itemID, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("item_id: %w", err)
	}
	qty, err := strconv.Atoi(row[4])
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}
	amount, err := decimal.NewFromString(row[5])
	if err != nil {
		return nil, fmt.Errorf("total_amount: %w", err)
	}
	soldAt, err := time.ParseInLocation(timeLayout, row[6], time.Local)
	if err != nil {
		return nil, fmt.Errorf("sold_at: %w", err)
	}

	return &models.Sale{
		ID:           id,
		PharmacistID: pharmacistID,
		ClientID:     clientID,
		ItemID:       itemID,
		Quantity:     qty,
		TotalAmount:  amount,
		SoldAt:       soldAt,
	}, nil
}
