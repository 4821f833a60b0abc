package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"backend/entity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.DiningTable{},
		&entity.Bill{}, &entity.BillItem{},
		&entity.StockItem{}, &entity.StockAdjustment{},
		&entity.Expense{},
		&entity.Employee{}, &entity.SalaryRecord{}, &entity.Attendance{},
		&entity.SeedMarker{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustCreate(t *testing.T, db *gorm.DB, row any) {
	t.Helper()
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("create %T: %v", row, err)
	}
}
