package service_test

import (
	"testing"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/service"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/safar/pharmacy-store/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fixture wires the full service stack over a throwaway data dir. Tests go
// through the real file-backed repos rather than mocks so the persistence
// semantics are exercised too.
type fixture struct {
	movements *store.MovementRepo

	catalog  *service.Catalog
	sales    *service.Sales
	ordering *service.Ordering
	clients  *service.Clients
	auth     *service.Auth
	report   *service.Reporting
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	files, err := storage.New(t.TempDir())
	require.NoError(t, err)

	items, err := store.NewItemRepo(files)
	require.NoError(t, err)
	movements, err := store.NewMovementRepo(files)
	require.NoError(t, err)
	sales, err := store.NewSaleRepo(files)
	require.NoError(t, err)
	orders, err := store.NewOrderRepo(files)
	require.NoError(t, err)
	clients, err := store.NewClientRepo(files)
	require.NoError(t, err)
	pharmacists, err := store.NewPharmacistRepo(files)
	require.NoError(t, err)
	managers, err := store.NewManagerRepo(files)
	require.NoError(t, err)

	f := &fixture{movements: movements}
	f.catalog = service.NewCatalog(items, movements)
	f.sales = service.NewSales(sales, clients, f.catalog)
	f.ordering = service.NewOrdering(orders, f.catalog)
	f.clients = service.NewClients(clients)
	f.auth = service.NewAuth(pharmacists, managers)
	f.report = service.NewReporting(f.catalog, f.sales, f.ordering)
	return f
}

func (f *fixture) addItem(t *testing.T, name string, stock int, price float64) *models.Item {
	t.Helper()

	item, err := f.catalog.AddItem(name, "500mg", stock, decimal.NewFromFloat(price))
	require.NoError(t, err)
	return item
}

func (f *fixture) addWalkInClient(t *testing.T) *models.Client {
	t.Helper()

	client, err := f.clients.AddClient("Walk-in", "Customer", "", "")
	require.NoError(t, err)
	require.Equal(t, models.AnonymousClientID, client.ID)
	return client
}
