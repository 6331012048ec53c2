package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/jspsoluciones/raffle-backend/internal/config"
	"github.com/jspsoluciones/raffle-backend/internal/db"
	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}

	if err := gdb.AutoMigrate(
		&model.RaffleNumber{},
		&model.Buyer{},
		&model.RaffleRequest{},
		&model.RequestNumber{},
		&model.RaffleSettings{},
		&model.Profile{},
		&model.Notification{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	canSeed, err := shouldSeed(gdb)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("numbers already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	if err := gdb.Transaction(func(tx *gorm.DB) error {
		return seedNumbers(tx, cfg.RaffleSize)
	}); err != nil {
		return fmt.Errorf("seed numbers: %w", err)
	}
	log.Printf("seeded numbers 1..%d", cfg.RaffleSize)

	if _, err := repository.NewSettingsRepository(gdb).Get(ctx); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	log.Printf("settings row in place")

	if err := seedProfiles(ctx, gdb); err != nil {
		return fmt.Errorf("seed profiles: %w", err)
	}
	log.Printf("seed completed")
	return nil
}

func shouldSeed(gdb *gorm.DB) (bool, error) {
	if os.Getenv("FORCE_SEED") == "true" {
		return true, nil
	}
	var count int64
	if err := gdb.Model(&model.RaffleNumber{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count numbers: %w", err)
	}
	return count == 0, nil
}

// seedNumbers inserts any missing ledger rows; existing rows keep their
// status and ownership.
func seedNumbers(tx *gorm.DB, size int) error {
	var existing []int
	if err := tx.Model(&model.RaffleNumber{}).Pluck("number", &existing).Error; err != nil {
		return err
	}
	present := make(map[int]bool, len(existing))
	for _, n := range existing {
		present[n] = true
	}

	batch := make([]model.RaffleNumber, 0, size)
	for n := 1; n <= size; n++ {
		if present[n] {
			continue
		}
		batch = append(batch, model.RaffleNumber{Number: n, Status: model.NumberStatusAvailable})
	}
	if len(batch) == 0 {
		return nil
	}
	return tx.CreateInBatches(batch, 200).Error
}

func seedProfiles(ctx context.Context, gdb *gorm.DB) error {
	profiles := []model.Profile{
		{ID: "admin-1", Name: "Admin", Email: "admin@jspsoluciones.online", Color: "#9b87f5", Role: model.RoleAdmin},
		{ID: "operator-1", Name: "Operator 1", Email: "operador1@jspsoluciones.online", Color: "#0EA5E9", Role: model.RoleOperator},
		{ID: "operator-2", Name: "Operator 2", Email: "operador2@jspsoluciones.online", Color: "#F97316", Role: model.RoleOperator},
	}
	repo := repository.NewProfileRepository(gdb)
	for i := range profiles {
		if err := repo.Upsert(ctx, &profiles[i]); err != nil {
			return err
		}
	}
	return nil
}
