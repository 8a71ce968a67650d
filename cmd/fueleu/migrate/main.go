package main

import (
	"fueleu_compliance/internal/app/config"
	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/dsn"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()
	db, err := gorm.Open(postgres.Open(postgresString), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	// Порядок миграций: routes, ship_compliance, bank_entries, pools, pool_members
	err = db.AutoMigrate(&ds.Route{})
	if err != nil {
		logrus.Fatalf("error migrating routes: %v", err)
	}
	err = db.AutoMigrate(&ds.ShipCompliance{})
	if err != nil {
		logrus.Fatalf("error migrating ship_compliance: %v", err)
	}
	err = db.AutoMigrate(&ds.BankEntry{})
	if err != nil {
		logrus.Fatalf("error migrating bank_entries: %v", err)
	}
	err = db.AutoMigrate(&ds.Pool{}, &ds.PoolMember{})
	if err != nil {
		logrus.Fatalf("error migrating pools: %v", err)
	}

	// не больше одного базового маршрута во всей таблице
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_routes_single_baseline ON routes (is_baseline) WHERE is_baseline`).Error
	if err != nil {
		logrus.Fatalf("error creating baseline index: %v", err)
	}

	logrus.Info("Database migration completed")
}
