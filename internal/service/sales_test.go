package service_test

import (
	"testing"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/service"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRecordSaleDecrementsStockAndLogsMovement(t *testing.T) {
	f := newFixture(t)
	f.addWalkInClient(t)
	item := f.addItem(t, "Paracetamol", 100, 2.5)

	receipt, err := f.sales.RecordSale(1, models.AnonymousClientID, item.ID, 20)
	require.NoError(t, err)
	require.True(t, receipt.StockUpdated)
	require.False(t, receipt.CriticalStock)
	require.True(t, receipt.Sale.TotalAmount.Equal(decimal.NewFromInt(50)))

	got, err := f.catalog.GetItem(item.ID)
	require.NoError(t, err)
	require.Equal(t, 80, got.Stock)

	saleMovements, err := f.movements.FindByKind(models.MovementSale)
	require.NoError(t, err)
	require.Len(t, saleMovements, 1)
	require.Equal(t, -20, saleMovements[0].Delta)
}

func TestRecordSaleRejectsOversell(t *testing.T) {
	f := newFixture(t)
	f.addWalkInClient(t)
	item := f.addItem(t, "Paracetamol", 5, 2.5)

	_, err := f.sales.RecordSale(1, models.AnonymousClientID, item.ID, 6)
	require.ErrorIs(t, err, storage.ErrInsufficientStock)

	// Nothing may have been written.
	got, err := f.catalog.GetItem(item.ID)
	require.NoError(t, err)
	require.Equal(t, 5, got.Stock)

	all, err := f.sales.AllSales()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestRecordSaleValidation(t *testing.T) {
	f := newFixture(t)
	f.addWalkInClient(t)
	item := f.addItem(t, "Paracetamol", 10, 2.5)

	_, err := f.sales.RecordSale(1, models.AnonymousClientID, item.ID, 0)
	require.ErrorIs(t, err, service.ErrInvalidQuantity)

	_, err = f.sales.RecordSale(1, models.AnonymousClientID, 99, 1)
	require.ErrorIs(t, err, storage.ErrItemNotFound)

	_, err = f.sales.RecordSale(1, 42, item.ID, 1)
	require.ErrorIs(t, err, storage.ErrClientNotFound)
}

func TestRecordSaleNormalizesAnonymousClient(t *testing.T) {
	f := newFixture(t)
	f.addWalkInClient(t)
	item := f.addItem(t, "Paracetamol", 10, 2.5)

	receipt, err := f.sales.RecordSale(1, 0, item.ID, 1)
	require.NoError(t, err)
	require.Equal(t, models.AnonymousClientID, receipt.Sale.ClientID)

	receipt, err = f.sales.RecordSale(1, -3, item.ID, 1)
	require.NoError(t, err)
	require.Equal(t, models.AnonymousClientID, receipt.Sale.ClientID)
}

func TestRecordSaleFlagsCriticalStock(t *testing.T) {
	f := newFixture(t)
	f.addWalkInClient(t)
	item := f.addItem(t, "Paracetamol", 11, 2.5)

	receipt, err := f.sales.RecordSale(1, 0, item.ID, 2)
	require.NoError(t, err)
	require.True(t, receipt.CriticalStock)
}

func TestTotalAmountSurvivesPriceChange(t *testing.T) {
	f := newFixture(t)
	f.addWalkInClient(t)
	item := f.addItem(t, "Paracetamol", 100, 2.5)

	receipt, err := f.sales.RecordSale(1, 0, item.ID, 4)
	require.NoError(t, err)

	item.UnitPrice = decimal.NewFromInt(9)
	require.NoError(t, f.catalog.UpdateItem(item))

	sale, err := f.sales.GetSale(receipt.Sale.ID)
	require.NoError(t, err)
	require.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(10)), "recorded total keeps the price at time of sale")
}

func TestCancelSaleRestoresStockAndDeletesSale(t *testing.T) {
	f := newFixture(t)
	f.addWalkInClient(t)
	item := f.addItem(t, "Paracetamol", 100, 2.5)

	receipt, err := f.sales.RecordSale(1, 0, item.ID, 20)
	require.NoError(t, err)

	result, err := f.sales.CancelSale(receipt.Sale.ID)
	require.NoError(t, err)
	require.True(t, result.StockRestored)

	got, err := f.catalog.GetItem(item.ID)
	require.NoError(t, err)
	require.Equal(t, 100, got.Stock)

	_, err = f.sales.GetSale(receipt.Sale.ID)
	require.ErrorIs(t, err, storage.ErrSaleNotFound)

	// The ledger keeps both movements; cancellation is a new event, not an
	// erasure.
	history, err := f.catalog.ItemHistory(item.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
}

func TestCancelSaleUnknownSale(t *testing.T) {
	f := newFixture(t)

	_, err := f.sales.CancelSale(42)
	require.ErrorIs(t, err, storage.ErrSaleNotFound)
}
