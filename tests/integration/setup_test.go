package integration

import (
	"testing"

	"github.com/safar/pharmacy-store/internal/seed"
	"github.com/safar/pharmacy-store/internal/service"
	"github.com/safar/pharmacy-store/internal/storage"
	"github.com/safar/pharmacy-store/internal/store"
)

type env struct {
	dataDir string

	catalog  *service.Catalog
	sales    *service.Sales
	ordering *service.Ordering
	clients  *service.Clients
	auth     *service.Auth
	report   *service.Reporting
}

// setupEnv wires the whole stack over a fresh data dir, seeded with the
// default accounts. Passing a previous env's dataDir reopens its files,
// which is how restarts are simulated.
func setupEnv(t *testing.T, dataDir string) *env {
	t.Helper()

	if dataDir == "" {
		dataDir = t.TempDir()
	}

	files, err := storage.New(dataDir)
	if err != nil {
		t.Fatalf("Open data dir: %v", err)
	}

	items, err := store.NewItemRepo(files)
	if err != nil {
		t.Fatalf("Open items table: %v", err)
	}
	movements, err := store.NewMovementRepo(files)
	if err != nil {
		t.Fatalf("Open stock movements table: %v", err)
	}
	saleRows, err := store.NewSaleRepo(files)
	if err != nil {
		t.Fatalf("Open sales table: %v", err)
	}
	orders, err := store.NewOrderRepo(files)
	if err != nil {
		t.Fatalf("Open orders table: %v", err)
	}
	clientRows, err := store.NewClientRepo(files)
	if err != nil {
		t.Fatalf("Open clients table: %v", err)
	}
	pharmacists, err := store.NewPharmacistRepo(files)
	if err != nil {
		t.Fatalf("Open pharmacists table: %v", err)
	}
	managers, err := store.NewManagerRepo(files)
	if err != nil {
		t.Fatalf("Open managers table: %v", err)
	}

	if err := seed.EnsureDefaults(clientRows, pharmacists, managers); err != nil {
		t.Fatalf("Seed defaults: %v", err)
	}

	e := &env{dataDir: dataDir}
	e.catalog = service.NewCatalog(items, movements)
	e.sales = service.NewSales(saleRows, clientRows, e.catalog)
	e.ordering = service.NewOrdering(orders, e.catalog)
	e.clients = service.NewClients(clientRows)
	e.auth = service.NewAuth(pharmacists, managers)
	e.report = service.NewReporting(e.catalog, e.sales, e.ordering)
	return e
}
