package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/errs"
	"backend/pos"
	"backend/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemReq struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	HalfPrice   *decimal.Decimal `json:"halfPrice"`
	CategoryID  *uint            `json:"categoryId"`
	IsAvailable *bool            `json:"isAvailable"`
}

func (req *MenuItemReq) validate() error {
	if req.Name == "" {
		return errs.Validation("menu item must have a name")
	}
	if req.Price.IsNegative() {
		return errs.Validation("price cannot be negative")
	}
	if req.HalfPrice != nil && req.HalfPrice.IsNegative() {
		return errs.Validation("half price cannot be negative")
	}
	return nil
}

// MenuItemView adds the category name that the entity keeps out of its
// JSON shape.
type MenuItemView struct {
	entity.MenuItem
	CategoryName string `json:"categoryName,omitempty"`
}

func (s *MenuService) ListItems() ([]MenuItemView, error) {
	items, err := s.Repo.FindAllItems()
	if err != nil {
		return nil, errs.Persistence(err, "could not list menu items")
	}
	views := make([]MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, MenuItemView{MenuItem: item, CategoryName: item.Category.Name})
	}
	return views, nil
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("menu item not found")
		}
		return nil, errs.Persistence(err, "could not load menu item")
	}
	return item, nil
}

func (s *MenuService) AddItem(req *MenuItemReq) (*entity.MenuItem, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	item := &entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		HalfPrice:   req.HalfPrice,
		CategoryID:  req.CategoryID,
		IsAvailable: available,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, errs.Persistence(err, "could not create menu item")
	}
	return item, nil
}

func (s *MenuService) UpdateItem(id uint, req *MenuItemReq) (*entity.MenuItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.HalfPrice = req.HalfPrice
	item.CategoryID = req.CategoryID
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.Repo.UpdateItem(item); err != nil {
		return nil, errs.Persistence(err, "could not update menu item")
	}
	return item, nil
}

func (s *MenuService) DeleteItem(id uint) error {
	if _, err := s.GetItem(id); err != nil {
		return err
	}
	if err := s.Repo.DeleteItem(id); err != nil {
		return errs.Persistence(err, "could not delete menu item")
	}
	return nil
}

func (s *MenuService) ListCategories() ([]entity.MenuCategory, error) {
	cats, err := s.Repo.FindAllCategories()
	if err != nil {
		return nil, errs.Persistence(err, "could not list categories")
	}
	return cats, nil
}

func (s *MenuService) AddCategory(name string) (*entity.MenuCategory, error) {
	if name == "" {
		return nil, errs.Validation("category must have a name")
	}
	cat := &entity.MenuCategory{Name: name}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, errs.Persistence(err, "could not create category")
	}
	return cat, nil
}

// Snapshot converts a catalog item into the slice the order entry keypad
// works on.
func Snapshot(item *entity.MenuItem) pos.ItemSnapshot {
	return pos.ItemSnapshot{
		MenuItemID:  item.ID,
		Name:        item.Name,
		Price:       item.Price,
		HalfPrice:   item.HalfPrice,
		IsAvailable: item.IsAvailable,
	}
}
