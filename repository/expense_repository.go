package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

// FindAll filters by expense date (YYYY-MM-DD, half-open range); empty
// bounds are ignored.
func (r *ExpenseRepository) FindAll(from, to string) ([]entity.Expense, error) {
	q := r.DB.Model(&entity.Expense{})
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date < ?", to)
	}

	var expenses []entity.Expense
	err := q.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) FindByID(id uint) (*entity.Expense, error) {
	var expense entity.Expense
	if err := r.DB.First(&expense, id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Create(expense *entity.Expense) error {
	return r.DB.Create(expense).Error
}

func (r *ExpenseRepository) Update(expense *entity.Expense) error {
	return r.DB.Model(&entity.Expense{}).Where("id = ?", expense.ID).Updates(map[string]interface{}{
		"description": expense.Description,
		"amount":      expense.Amount,
		"category":    expense.Category,
		"date":        expense.Date,
		"notes":       expense.Notes,
	}).Error
}

func (r *ExpenseRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Expense{}, id).Error
}

func (r *ExpenseRepository) DistinctCategories() ([]string, error) {
	var cats []string
	err := r.DB.Model(&entity.Expense{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error
	return cats, err
}
