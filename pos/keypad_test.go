package pos

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func itemPlain(id uint, name, price string) ItemSnapshot {
	return ItemSnapshot{MenuItemID: id, Name: name, Price: dec(price), IsAvailable: true}
}

func itemHalf(id uint, name, price, half string) ItemSnapshot {
	it := itemPlain(id, name, price)
	it.HalfPrice = decPtr(half)
	return it
}

func digits(k *Keypad, s string) {
	for i := 0; i < len(s); i++ {
		k.Handle(KeyEvent{Key: KeyDigit, Digit: s[i]})
	}
}

func TestSelectEntersAwaitingPrice(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Garlic Bread", "4.99")

	if eff := k.Handle(KeyEvent{Key: KeySelect, Item: &it}); eff != EffectConsumed {
		t.Fatalf("select effect = %v, want consumed", eff)
	}
	if k.State() != StateAwaitingPrice {
		t.Fatalf("state = %v, want awaiting_price", k.State())
	}
	lines := k.Cart().Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 || !lines[0].Price.Equal(dec("4.99")) {
		t.Fatalf("unexpected line: %+v", lines[0])
	}
}

func TestKeyRepeatDoesNotAddLines(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Garlic Bread", "4.99")

	if eff := k.Handle(KeyEvent{Key: KeySelect, Item: &it, Repeat: true}); eff != EffectPassthrough {
		t.Fatalf("repeat select effect = %v, want passthrough", eff)
	}
	if k.Cart().Len() != 0 {
		t.Fatalf("cart len = %d, want 0", k.Cart().Len())
	}
}

func TestUnavailableItemIgnored(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Off Menu", "9.99")
	it.IsAvailable = false

	if eff := k.Handle(KeyEvent{Key: KeySelect, Item: &it}); eff != EffectPassthrough {
		t.Fatalf("effect = %v, want passthrough", eff)
	}
	if k.State() != StateIdle || k.Cart().Len() != 0 {
		t.Fatalf("select of unavailable item must be a no-op")
	}
}

func TestDigitsIgnoredWithoutHalfPrice(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Spring Rolls", "6.99")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	digits(k, "42")
	k.Handle(KeyEvent{Key: KeyConfirm})

	line := k.Cart().Lines()[0]
	if !line.Price.Equal(dec("6.99")) {
		t.Fatalf("price = %s, want base 6.99 (digits must have no effect)", line.Price)
	}
	if k.State() != StateAwaitingQuantity {
		t.Fatalf("confirm must still advance, state = %v", k.State())
	}
}

func TestHalfPriceFlow(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemHalf(7, "Biryani", "180.00", "120.00")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	k.Handle(KeyEvent{Key: KeyHalf})
	k.Handle(KeyEvent{Key: KeyConfirm})
	digits(k, "3")
	k.Handle(KeyEvent{Key: KeyConfirm})

	if k.State() != StateIdle {
		t.Fatalf("state = %v, want idle", k.State())
	}
	line := k.Cart().Lines()[0]
	if !line.Price.Equal(dec("120.00")) || line.Quantity != 3 {
		t.Fatalf("line = price %s qty %d, want 120.00 x3", line.Price, line.Quantity)
	}
	if !line.LineTotal().Equal(dec("360.00")) {
		t.Fatalf("lineTotal = %s, want 360.00", line.LineTotal())
	}
}

func TestNumericPriceOverride(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemHalf(7, "Biryani", "180.00", "120.00")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	digits(k, "150")
	k.Handle(KeyEvent{Key: KeyConfirm})

	line := k.Cart().Lines()[0]
	if !line.Price.Equal(dec("150")) {
		t.Fatalf("price = %s, want 150", line.Price)
	}
}

func TestPriceBackspaceFallsBackToBase(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemHalf(7, "Biryani", "180.00", "120.00")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	digits(k, "9")
	k.Handle(KeyEvent{Key: KeyBackspace})

	line := k.Cart().Lines()[0]
	if !line.Price.Equal(dec("180.00")) {
		t.Fatalf("price = %s, want base after emptying buffer", line.Price)
	}
}

func TestCancelMidPriceRemovesPendingLine(t *testing.T) {
	k := NewKeypad(NewCart())
	first := itemPlain(1, "Spring Rolls", "6.99")
	second := itemHalf(7, "Biryani", "180.00", "120.00")

	k.Handle(KeyEvent{Key: KeySelect, Item: &first})
	k.Handle(KeyEvent{Key: KeyConfirm})
	k.Handle(KeyEvent{Key: KeyConfirm})
	before := k.Cart().Len()

	k.Handle(KeyEvent{Key: KeySelect, Item: &second})
	k.Handle(KeyEvent{Key: KeyCancel})

	if k.Cart().Len() != before {
		t.Fatalf("cart len = %d, want unchanged %d", k.Cart().Len(), before)
	}
	if k.State() != StateIdle {
		t.Fatalf("state = %v, want idle", k.State())
	}
}

func TestQuantityZeroConfirmKeepsLastValid(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Spring Rolls", "6.99")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	k.Handle(KeyEvent{Key: KeyConfirm})
	digits(k, "4")
	k.Handle(KeyEvent{Key: KeyBackspace})
	k.Handle(KeyEvent{Key: KeyConfirm})

	line := k.Cart().Lines()[0]
	if line.Quantity != 1 {
		t.Fatalf("quantity = %d, want fallback 1", line.Quantity)
	}
	if k.State() != StateIdle {
		t.Fatalf("state = %v, want idle", k.State())
	}
}

func TestLiveQuantityClampsToOne(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Spring Rolls", "6.99")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	k.Handle(KeyEvent{Key: KeyConfirm})
	digits(k, "0")

	if line := k.Cart().Lines()[0]; line.Quantity != 1 {
		t.Fatalf("quantity = %d, want live clamp to 1", line.Quantity)
	}
}

func TestCancelOnIdleCommitsNonEmptyCart(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Spring Rolls", "6.99")

	if eff := k.Handle(KeyEvent{Key: KeyCancel}); eff != EffectPassthrough {
		t.Fatalf("empty-cart cancel effect = %v, want passthrough", eff)
	}

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	k.Handle(KeyEvent{Key: KeyConfirm})
	k.Handle(KeyEvent{Key: KeyConfirm})

	if eff := k.Handle(KeyEvent{Key: KeyCancel}); eff != EffectCommit {
		t.Fatalf("effect = %v, want commit", eff)
	}
}

func TestStrayKeysConsumedWhileNotIdle(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Spring Rolls", "6.99")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	if eff := k.Handle(KeyEvent{Key: KeyOther}); eff != EffectConsumed {
		t.Fatalf("effect = %v, want consumed in awaiting_price", eff)
	}
	other := itemPlain(2, "Wings", "9.99")
	if eff := k.Handle(KeyEvent{Key: KeySelect, Item: &other}); eff != EffectConsumed {
		t.Fatalf("nested select effect = %v, want consumed", eff)
	}
	if k.Cart().Len() != 1 {
		t.Fatalf("nested select must not add a line")
	}
}

func TestClearRefusedWhilePending(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Spring Rolls", "6.99")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	if err := k.Clear(); err == nil {
		t.Fatal("clear must be refused while awaiting price")
	}

	k.Handle(KeyEvent{Key: KeyConfirm})
	k.Handle(KeyEvent{Key: KeyConfirm})
	if err := k.Clear(); err != nil {
		t.Fatalf("clear on idle: %v", err)
	}
	if k.Cart().Len() != 0 {
		t.Fatalf("cart len = %d after clear", k.Cart().Len())
	}
}

func TestPointerAddMergesAtSamePrice(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Spring Rolls", "6.99")

	// Keyboard flow commits the first line, pointer adds stack onto it.
	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	k.Handle(KeyEvent{Key: KeyConfirm})
	k.Handle(KeyEvent{Key: KeyConfirm})

	if err := k.PointerAdd(it); err != nil {
		t.Fatalf("pointer add: %v", err)
	}
	if k.Cart().Len() != 1 {
		t.Fatalf("cart len = %d, want merged single line", k.Cart().Len())
	}
	if q := k.Cart().Lines()[0].Quantity; q != 2 {
		t.Fatalf("quantity = %d, want 2", q)
	}
	if k.State() != StateIdle {
		t.Fatalf("merge must not re-enter price entry")
	}
}

func TestPointerAddFreshLineAwaitsPrice(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemHalf(7, "Biryani", "180.00", "120.00")

	if err := k.PointerAdd(it); err != nil {
		t.Fatalf("pointer add: %v", err)
	}
	if k.State() != StateAwaitingPrice {
		t.Fatalf("state = %v, fresh pointer line must await price", k.State())
	}
}

func TestPointerRemoveStepsDownAndDeletes(t *testing.T) {
	k := NewKeypad(NewCart())
	it := itemPlain(1, "Spring Rolls", "6.99")

	k.Handle(KeyEvent{Key: KeySelect, Item: &it})
	k.Handle(KeyEvent{Key: KeyConfirm})
	digits(k, "2")
	k.Handle(KeyEvent{Key: KeyConfirm})
	id := k.Cart().Lines()[0].ID

	k.PointerRemove(id)
	if q := k.Cart().Lines()[0].Quantity; q != 1 {
		t.Fatalf("quantity = %d, want 1", q)
	}
	k.PointerRemove(id)
	if k.Cart().Len() != 0 {
		t.Fatalf("line must be removed at zero")
	}
}

func TestSubtotal(t *testing.T) {
	k := NewKeypad(NewCart())
	a := itemHalf(1, "A", "100", "50")
	b := itemPlain(2, "B", "30")

	k.Handle(KeyEvent{Key: KeySelect, Item: &a})
	k.Handle(KeyEvent{Key: KeyConfirm})
	digits(k, "2")
	k.Handle(KeyEvent{Key: KeyConfirm})

	k.Handle(KeyEvent{Key: KeySelect, Item: &b})
	k.Handle(KeyEvent{Key: KeyConfirm})
	k.Handle(KeyEvent{Key: KeyConfirm})

	if got := k.Cart().Subtotal(); !got.Equal(dec("230")) {
		t.Fatalf("subtotal = %s, want 230", got)
	}
}
