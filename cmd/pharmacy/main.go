package main

import (
	"log"

	"github.com/safar/pharmacy-store/internal/config"
	"github.com/safar/pharmacy-store/internal/seed"
	"github.com/safar/pharmacy-store/internal/service"
	"github.com/safar/pharmacy-store/internal/store"
	"github.com/safar/pharmacy-store/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	files, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("Open data dir: %v", err)
	}
	log.Printf("Using data dir %s", cfg.Storage.DataDir)

	items, err := store.NewItemRepo(files)
	if err != nil {
		log.Fatalf("Open items table: %v", err)
	}
	movements, err := store.NewMovementRepo(files)
	if err != nil {
		log.Fatalf("Open stock movements table: %v", err)
	}
	sales, err := store.NewSaleRepo(files)
	if err != nil {
		log.Fatalf("Open sales table: %v", err)
	}
	orders, err := store.NewOrderRepo(files)
	if err != nil {
		log.Fatalf("Open orders table: %v", err)
	}
	clients, err := store.NewClientRepo(files)
	if err != nil {
		log.Fatalf("Open clients table: %v", err)
	}
	pharmacists, err := store.NewPharmacistRepo(files)
	if err != nil {
		log.Fatalf("Open pharmacists table: %v", err)
	}
	managers, err := store.NewManagerRepo(files)
	if err != nil {
		log.Fatalf("Open managers table: %v", err)
	}

	if cfg.Seed.Enabled {
		if err := seed.EnsureDefaults(clients, pharmacists, managers); err != nil {
			log.Fatalf("Seed defaults: %v", err)
		}
	}

	catalog := service.NewCatalog(items, movements)
	salesSvc := service.NewSales(sales, clients, catalog)
	ordering := service.NewOrdering(orders, catalog)
	reporting := service.NewReporting(catalog, salesSvc, ordering)

	report, err := reporting.Summary()
	if err != nil {
		log.Fatalf("Build summary: %v", err)
	}

	log.Printf("Catalog: %d items, %d below critical stock", report.CatalogSize, len(report.CriticalItems))
	log.Printf("Sales: %d recorded, %d today", report.SalesCount, report.SalesToday)
	log.Printf("Revenue: %s total, %s today", report.TotalRevenue, report.TodayRevenue)
	log.Printf("Orders: %d pending of %d", report.PendingOrders, report.TotalOrders)
	for _, item := range report.CriticalItems {
		log.Printf("Critical stock: %s %s has %d units left", item.Name, item.Dosage, item.Stock)
	}
}
