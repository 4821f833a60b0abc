package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backend/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(source string) error {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.DiningTable{},
		&entity.Bill{}, &entity.BillItem{},
		&entity.StockItem{}, &entity.StockAdjustment{},
		&entity.Expense{},
		&entity.Employee{}, &entity.SalaryRecord{}, &entity.Attendance{},
		&entity.SeedMarker{},
	)
}
