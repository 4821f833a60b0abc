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

// TaxRate is the flat sales tax applied to every bill.
var TaxRate = decimal.NewFromFloat(0.05)

// Monetary outputs are rounded half-away-from-zero to 2 decimal places at
// derivation time and stored as-is; historical bills are never recomputed.
func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

type BillingService struct {
	DB       *gorm.DB
	Repo     *repository.BillRepository
	MenuRepo *repository.MenuRepository
}

func NewBillingService(db *gorm.DB, repo *repository.BillRepository, menuRepo *repository.MenuRepository) *BillingService {
	return &BillingService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

// ----- DTOs from Controller -----

type BillLineIn struct {
	MenuItemID    uint             `json:"menuItemId"`
	Quantity      int              `json:"quantity"`
	PriceOverride *decimal.Decimal `json:"priceOverride"`
}

type CreateBillReq struct {
	Items           []BillLineIn    `json:"items"`
	TableID         *uint           `json:"tableId"`
	DiscountPercent decimal.Decimal `json:"discount"`
	PaymentMethod   string          `json:"paymentMethod"`
	CustomerName    string          `json:"customerName"`
}

// LinesFromCart converts a committed order entry cart into bill input,
// carrying each line's effective price as the override.
func LinesFromCart(cart *pos.Cart) []BillLineIn {
	lines := cart.Lines()
	out := make([]BillLineIn, 0, len(lines))
	for _, l := range lines {
		price := l.Price
		out = append(out, BillLineIn{
			MenuItemID:    l.MenuItemID,
			Quantity:      l.Quantity,
			PriceOverride: &price,
		})
	}
	return out
}

// CreateBill validates the lines against the catalog, derives the totals
// and persists the header plus all items in one transaction. A failure on
// any line rolls back the whole bill.
func (s *BillingService) CreateBill(req *CreateBillReq) (*entity.Bill, error) {
	if len(req.Items) == 0 {
		return nil, errs.Validation("bill must have at least one item")
	}
	if req.DiscountPercent.IsNegative() {
		return nil, errs.Validation("discount cannot be negative")
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = entity.PaymentCash
	}
	switch payment {
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentOnline:
	default:
		return nil, errs.Validation("unknown payment method: %s", payment)
	}

	subtotal := decimal.Zero
	items := make([]entity.BillItem, 0, len(req.Items))
	for _, line := range req.Items {
		menuItem, err := s.MenuRepo.FindItemByID(line.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NotFound("menu item not found: %d", line.MenuItemID)
			}
			return nil, errs.Persistence(err, "could not resolve menu item")
		}
		if !menuItem.IsAvailable {
			return nil, errs.Unavailable("item unavailable: %s", menuItem.Name)
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		price := menuItem.Price
		if line.PriceOverride != nil && !line.PriceOverride.IsNegative() {
			price = *line.PriceOverride
		}
		lineTotal := price.Mul(decimal.NewFromInt(int64(qty)))
		subtotal = subtotal.Add(lineTotal)

		items = append(items, entity.BillItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      price,
			Quantity:   qty,
			LineTotal:  lineTotal,
		})
	}

	tax := round2(subtotal.Mul(TaxRate))
	discountAmount := round2(subtotal.Mul(req.DiscountPercent).Div(decimal.NewFromInt(100)))
	total := round2(subtotal.Add(tax).Sub(discountAmount))

	bill := &entity.Bill{
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		Subtotal:      round2(subtotal),
		Tax:           tax,
		Discount:      discountAmount,
		Total:         total,
		PaymentMethod: payment,
		Status:        "completed",
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateBill(tx, bill); err != nil {
			return err
		}
		for i := range items {
			items[i].BillID = bill.ID
			if err := s.Repo.CreateBillItem(tx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Persistence(err, "could not save bill")
	}

	bill.Items = items
	return bill, nil
}

func (s *BillingService) List(filters repository.BillFilters) ([]entity.Bill, error) {
	bills, err := s.Repo.List(filters)
	if err != nil {
		return nil, errs.Persistence(err, "could not list bills")
	}
	return bills, nil
}

func (s *BillingService) Detail(id uint) (*entity.Bill, error) {
	bill, err := s.Repo.FindWithItems(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("bill not found")
		}
		return nil, errs.Persistence(err, "could not load bill")
	}
	return bill, nil
}
