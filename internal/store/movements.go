package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
)

const movementsTable = "stock_movements"

var movementHeaders = []string{"id", "item_id", "delta", "kind", "recorded_at"}

// MovementRepo is the append-only stock audit log. Entries are never
// updated or deleted.
type MovementRepo struct {
	files *storage.Store
}

func NewMovementRepo(files *storage.Store) (*MovementRepo, error) {
	if err := files.EnsureTable(movementsTable, movementHeaders); err != nil {
		return nil, err
	}
	return &MovementRepo{files: files}, nil
}

func (r *MovementRepo) Create(movement *models.StockMovement) error {
	id, err := r.files.NextID(movementsTable)
	if err != nil {
		return fmt.Errorf("allocate movement id: %w", err)
	}
	movement.ID = id
	if movement.RecordedAt.IsZero() {
		movement.RecordedAt = time.Now()
	}

	return r.files.AppendRow(movementsTable, encodeMovement(movement))
}

func (r *MovementRepo) FindAll() ([]models.StockMovement, error) {
	return r.filter(func([]string) bool { return true })
}

func (r *MovementRepo) FindByItem(itemID int64) ([]models.StockMovement, error) {
	want := strconv.FormatInt(itemID, 10)
	return r.filter(func(row []string) bool { return row[1] == want })
}

func (r *MovementRepo) FindByKind(kind string) ([]models.StockMovement, error) {
	return r.filter(func(row []string) bool { return row[3] == kind })
}

func (r *MovementRepo) filter(keep func(row []string) bool) ([]models.StockMovement, error) {
	rows, err := r.files.ReadAll(movementsTable)
	if err != nil {
		return nil, err
	}

	var movements []models.StockMovement
	for i, row := range rows {
		if err := checkWidth(row, len(movementHeaders)); err != nil {
			return nil, rowError(movementsTable, i, err)
		}
		if !keep(row) {
			continue
		}
		movement, err := decodeMovement(row)
		if err != nil {
			return nil, rowError(movementsTable, i, err)
		}
		movements = append(movements, *movement)
	}

	return movements, nil
}

func encodeMovement(movement *models.StockMovement) []string {
	return []string{
		strconv.FormatInt(movement.ID, 10),
		strconv.FormatInt(movement.ItemID, 10),
		strconv.Itoa(movement.Delta),
		movement.Kind,
		movement.RecordedAt.Format(timeLayout),
	}
}

func decodeMovement(row []string) (*models.StockMovement, error) {
	if err := checkWidth(row, len(movementHeaders)); err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	itemID, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("item_id: %w", err)
	}
	delta, err := strconv.Atoi(row[2])
	if err != nil {
		return nil, fmt.Errorf("delta: %w", err)
	}
	recordedAt, err := time.ParseInLocation(timeLayout, row[4], time.Local)
	if err != nil {
		return nil, fmt.Errorf("recorded_at: %w", err)
	}

	return &models.StockMovement{
		ID:         id,
		ItemID:     itemID,
		Delta:      delta,
		Kind:       row[3],
		RecordedAt: recordedAt,
	}, nil
}
