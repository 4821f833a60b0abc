package configs

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backend/entity"
	"backend/policy"
)

type seedStep struct {
	version int
	name    string
	run     func(tx *gorm.DB, cfg *Config) error
}

var seedSteps = []seedStep{
	{1, "default admin account", seedAdmin},
	{2, "default cashier account", seedCashier},
	{3, "dining tables", seedTables},
	{4, "menu categories", seedCategories},
	{5, "sample menu items", seedMenuItems},
}

// SeedDatabase runs every seed step that has not run before. Each step is
// transactional and recorded in seed_markers so restarts never re-seed.
func SeedDatabase(cfg *Config) error {
	for _, step := range seedSteps {
		var n int64
		if err := db.Model(&entity.SeedMarker{}).Where("version = ?", step.version).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.run(tx, cfg); err != nil {
				return err
			}
			return tx.Create(&entity.SeedMarker{Version: step.version}).Error
		})
		if err != nil {
			return fmt.Errorf("seed step %d (%s): %w", step.version, step.name, err)
		}
		log.Printf("seeded: %s", step.name)
	}
	return nil
}

func seedUser(tx *gorm.DB, username, password, role string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return tx.Create(&entity.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}).Error
}

func seedAdmin(tx *gorm.DB, cfg *Config) error {
	return seedUser(tx, cfg.AdminUsername, cfg.AdminPassword, policy.RoleAdmin)
}

func seedCashier(tx *gorm.DB, cfg *Config) error {
	return seedUser(tx, cfg.CashierUsername, cfg.CashierPassword, policy.RoleCashier)
}

func seedTables(tx *gorm.DB, _ *Config) error {
	for n := 1; n <= 10; n++ {
		if err := tx.Create(&entity.DiningTable{Number: n, Capacity: 4}).Error; err != nil {
			return err
		}
	}
	return nil
}

var seedCategoryNames = []string{"Starters", "Mains", "Breads", "Drinks", "Desserts"}

func seedCategories(tx *gorm.DB, _ *Config) error {
	for _, name := range seedCategoryNames {
		if err := tx.Create(&entity.MenuCategory{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedMenuItems(tx *gorm.DB, _ *Config) error {
	type item struct {
		name     string
		category string
		price    float64
		half     float64
	}
	items := []item{
		{"Veg Spring Rolls", "Starters", 120, 70},
		{"Paneer Tikka", "Starters", 180, 100},
		{"Butter Chicken", "Mains", 260, 150},
		{"Dal Makhani", "Mains", 180, 100},
		{"Veg Biryani", "Mains", 200, 120},
		{"Butter Naan", "Breads", 40, 0},
		{"Tandoori Roti", "Breads", 25, 0},
		{"Fresh Lime Soda", "Drinks", 60, 0},
		{"Masala Chai", "Drinks", 30, 0},
		{"Gulab Jamun", "Desserts", 80, 45},
	}

	for _, it := range items {
		var category entity.MenuCategory
		if err := tx.Where("name = ?", it.category).First(&category).Error; err != nil {
			return err
		}
		row := entity.MenuItem{
			Name:        it.name,
			Price:       decimal.NewFromFloat(it.price),
			CategoryID:  &category.ID,
			IsAvailable: true,
		}
		if it.half > 0 {
			half := decimal.NewFromFloat(it.half)
			row.HalfPrice = &half
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
