package services

import (
	"testing"

	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/errs"
	"backend/repository"
)

func newStockService(t *testing.T) (*StockService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	return NewStockService(db, repository.NewStockRepository(db)), db
}

func seedStockItem(t *testing.T, db *gorm.DB, name string, qty, reorder int) *entity.StockItem {
	t.Helper()
	item := &entity.StockItem{Name: name, Category: "General", Quantity: qty, Unit: "pcs", ReorderLevel: reorder}
	mustCreate(t, db, item)
	return item
}

func TestAdjustQuantity(t *testing.T) {
	svc, db := newStockService(t)
	item := seedStockItem(t, db, "Basmati Rice", 10, 5)

	got, err := svc.AdjustQuantity(item.ID, -4, "kitchen use")
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if got.Quantity != 6 {
		t.Errorf("quantity = %d, want 6", got.Quantity)
	}

	history, err := svc.History(item.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d rows, want 1", len(history))
	}
	adj := history[0]
	if adj.PreviousQty != 10 || adj.Adjustment != -4 || adj.NewQty != 6 {
		t.Errorf("audit row = %d/%d/%d, want 10/-4/6", adj.PreviousQty, adj.Adjustment, adj.NewQty)
	}
	if adj.Reason != "kitchen use" {
		t.Errorf("reason = %q", adj.Reason)
	}
}

func TestAdjustQuantityBelowZeroRejected(t *testing.T) {
	svc, db := newStockService(t)
	item := seedStockItem(t, db, "Paneer", 3, 5)

	_, err := svc.AdjustQuantity(item.ID, -4, "spillage")
	if !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("want validation error, got %v", err)
	}

	reloaded, err := svc.Get(item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.Quantity != 3 {
		t.Errorf("quantity changed to %d after rejected adjustment", reloaded.Quantity)
	}
	history, err := svc.History(item.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("rejected adjustment wrote %d audit rows", len(history))
	}
}

func TestAdjustQuantityUnknownItem(t *testing.T) {
	svc, _ := newStockService(t)

	_, err := svc.AdjustQuantity(42, 1, "delivery")
	if !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("want not-found error, got %v", err)
	}
}

func TestLowStock(t *testing.T) {
	svc, db := newStockService(t)
	seedStockItem(t, db, "Paneer", 2, 5)
	seedStockItem(t, db, "Basmati Rice", 40, 10)
	seedStockItem(t, db, "Ghee", 10, 10)

	t.Run("against reorder level", func(t *testing.T) {
		items, err := svc.LowStock(-1)
		if err != nil {
			t.Fatalf("low stock: %v", err)
		}
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name)
		}
		if len(items) != 2 {
			t.Fatalf("low stock = %v, want Paneer and Ghee", names)
		}
	})

	t.Run("explicit threshold", func(t *testing.T) {
		items, err := svc.LowStock(3)
		if err != nil {
			t.Fatalf("low stock: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Paneer" {
			t.Fatalf("low stock below 3 = %d items, want only Paneer", len(items))
		}
	})
}

func TestStockUpdateDoesNotTouchQuantity(t *testing.T) {
	svc, db := newStockService(t)
	item := seedStockItem(t, db, "Ghee", 8, 5)

	_, err := svc.Update(item.ID, &StockItemReq{
		Name:         "Ghee",
		Category:     "Dairy",
		Quantity:     100,
		Unit:         "kg",
		ReorderLevel: 4,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	reloaded, err := svc.Get(item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.Quantity != 8 {
		t.Errorf("quantity = %d, want untouched 8", reloaded.Quantity)
	}
	if reloaded.Category != "Dairy" || reloaded.Unit != "kg" {
		t.Errorf("metadata not updated: %+v", reloaded)
	}
}
