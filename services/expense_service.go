package services

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/errs"
	"backend/repository"
)

type ExpenseService struct {
	Repo *repository.ExpenseRepository
}

func NewExpenseService(repo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{Repo: repo}
}

type ExpenseReq struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Notes       string          `json:"notes"`
}

func (s *ExpenseService) List(from, to string) ([]entity.Expense, error) {
	expenses, err := s.Repo.FindAll(from, to)
	if err != nil {
		return nil, errs.Persistence(err, "could not list expenses")
	}
	return expenses, nil
}

func (s *ExpenseService) Get(id uint) (*entity.Expense, error) {
	expense, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("expense not found")
		}
		return nil, errs.Persistence(err, "could not load expense")
	}
	return expense, nil
}

func (s *ExpenseService) Add(req *ExpenseReq) (*entity.Expense, error) {
	if req.Description == "" {
		return nil, errs.Validation("expense must have a description")
	}
	if !req.Amount.IsPositive() {
		return nil, errs.Validation("amount must be a positive number")
	}
	if req.Category == "" {
		return nil, errs.Validation("expense must have a category")
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	expense := &entity.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(expense); err != nil {
		return nil, errs.Persistence(err, "could not create expense")
	}
	return expense, nil
}

func (s *ExpenseService) Update(id uint, req *ExpenseReq) (*entity.Expense, error) {
	expense, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Description == "" {
		return nil, errs.Validation("expense must have a description")
	}
	if !req.Amount.IsPositive() {
		return nil, errs.Validation("amount must be a positive number")
	}

	expense.Description = req.Description
	expense.Amount = req.Amount
	if req.Category != "" {
		expense.Category = req.Category
	}
	if req.Date != "" {
		expense.Date = req.Date
	}
	expense.Notes = req.Notes

	if err := s.Repo.Update(expense); err != nil {
		return nil, errs.Persistence(err, "could not update expense")
	}
	return expense, nil
}

func (s *ExpenseService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return errs.Persistence(err, "could not delete expense")
	}
	return nil
}

func (s *ExpenseService) Categories() ([]string, error) {
	cats, err := s.Repo.DistinctCategories()
	if err != nil {
		return nil, errs.Persistence(err, "could not list expense categories")
	}
	return cats, nil
}

type ExpenseCategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type ExpenseSummary struct {
	ByCategory  []ExpenseCategoryTotal `json:"byCategory"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	TotalCount  int                    `json:"totalCount"`
}

// Summary folds expenses in [from, to) into per-category totals.
func (s *ExpenseService) Summary(from, to string) (*ExpenseSummary, error) {
	expenses, err := s.List(from, to)
	if err != nil {
		return nil, err
	}

	byCat := map[string]*ExpenseCategoryTotal{}
	total := decimal.Zero
	for _, exp := range expenses {
		c, ok := byCat[exp.Category]
		if !ok {
			c = &ExpenseCategoryTotal{Category: exp.Category, Total: decimal.Zero}
			byCat[exp.Category] = c
		}
		c.Total = c.Total.Add(exp.Amount)
		c.Count++
		total = total.Add(exp.Amount)
	}

	out := &ExpenseSummary{
		ByCategory:  make([]ExpenseCategoryTotal, 0, len(byCat)),
		TotalAmount: total,
		TotalCount:  len(expenses),
	}
	for _, c := range byCat {
		out.ByCategory = append(out.ByCategory, *c)
	}
	sort.Slice(out.ByCategory, func(i, j int) bool {
		if !out.ByCategory[i].Total.Equal(out.ByCategory[j].Total) {
			return out.ByCategory[i].Total.GreaterThan(out.ByCategory[j].Total)
		}
		return out.ByCategory[i].Category < out.ByCategory[j].Category
	})
	return out, nil
}
