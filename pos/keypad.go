package pos

import (
	"github.com/shopspring/decimal"

	"backend/pkg/errs"
)

// The keypad turns raw key events into cart mutations so a cashier can
// build an order without a mouse: select an item, optionally override the
// price, then the quantity. It is synchronous and holds no UI or store
// dependency.

type State int

const (
	StateIdle State = iota
	StateAwaitingPrice
	StateAwaitingQuantity
)

func (s State) String() string {
	switch s {
	case StateAwaitingPrice:
		return "awaiting_price"
	case StateAwaitingQuantity:
		return "awaiting_quantity"
	default:
		return "idle"
	}
}

type Key int

const (
	KeySelect Key = iota // letter key already resolved to a menu item
	KeyDigit
	KeyHalf
	KeyConfirm
	KeyCancel
	KeyBackspace
	KeyOther
)

type KeyEvent struct {
	Key    Key
	Digit  byte          // '0'..'9', only for KeyDigit
	Item   *ItemSnapshot // only for KeySelect
	Repeat bool          // OS key auto-repeat
}

// Effect tells the caller what a key event did. Passthrough means the
// keypad did not claim the key and other handlers may run; Consumed means
// it must not leak further; Commit asks the caller to submit the cart.
type Effect int

const (
	EffectPassthrough Effect = iota
	EffectConsumed
	EffectCommit
)

type Keypad struct {
	cart   *Cart
	state  State
	active string // pending line id while not idle
	buffer string
}

func NewKeypad(cart *Cart) *Keypad {
	return &Keypad{cart: cart}
}

func (k *Keypad) State() State     { return k.state }
func (k *Keypad) Cart() *Cart      { return k.cart }
func (k *Keypad) ActiveLine() string { return k.active }

// Idle reports whether cart-wide operations (clear, discount edit, payment
// change, submission) are allowed right now.
func (k *Keypad) Idle() bool { return k.state == StateIdle }

// Handle consumes one key event and applies the transition for the current
// state.
func (k *Keypad) Handle(ev KeyEvent) Effect {
	switch k.state {
	case StateIdle:
		return k.handleIdle(ev)
	case StateAwaitingPrice:
		return k.handleAwaitingPrice(ev)
	case StateAwaitingQuantity:
		return k.handleAwaitingQuantity(ev)
	}
	return EffectPassthrough
}

func (k *Keypad) handleIdle(ev KeyEvent) Effect {
	switch ev.Key {
	case KeySelect:
		// Key repeats must not spray duplicate lines into the cart.
		if ev.Repeat || ev.Item == nil || !ev.Item.IsAvailable {
			return EffectPassthrough
		}
		line := k.cart.AddLine(*ev.Item)
		k.enterAwaitingPrice(line.ID)
		return EffectConsumed
	case KeyCancel:
		if k.cart.Len() > 0 {
			return EffectCommit
		}
		return EffectPassthrough
	default:
		return EffectPassthrough
	}
}

func (k *Keypad) handleAwaitingPrice(ev KeyEvent) Effect {
	line := k.cart.Line(k.active)
	if line == nil {
		// Line vanished under us (pointer removal); recover to idle.
		k.reset()
		return EffectConsumed
	}

	switch ev.Key {
	case KeyDigit:
		// Numeric price override is only offered on items with a half
		// price; everything else sells at its catalog price.
		if line.HalfPrice == nil {
			return EffectConsumed
		}
		k.buffer += string(ev.Digit)
		if p, err := decimal.NewFromString(k.buffer); err == nil && !p.IsNegative() {
			line.Price = p
		}
		return EffectConsumed
	case KeyHalf:
		if line.HalfPrice != nil {
			line.Price = *line.HalfPrice
			k.buffer = ""
		}
		return EffectConsumed
	case KeyBackspace:
		k.trimBuffer()
		if k.buffer == "" {
			line.Price = line.BasePrice
		} else if p, err := decimal.NewFromString(k.buffer); err == nil && !p.IsNegative() {
			line.Price = p
		}
		return EffectConsumed
	case KeyConfirm:
		if p, err := decimal.NewFromString(k.buffer); k.buffer != "" && err == nil && p.IsPositive() {
			line.Price = p
		}
		// Empty or zero buffer keeps the last valid price.
		k.buffer = ""
		k.state = StateAwaitingQuantity
		return EffectConsumed
	case KeyCancel:
		k.cart.RemoveLine(k.active)
		k.reset()
		return EffectConsumed
	default:
		return EffectConsumed
	}
}

func (k *Keypad) handleAwaitingQuantity(ev KeyEvent) Effect {
	line := k.cart.Line(k.active)
	if line == nil {
		k.reset()
		return EffectConsumed
	}

	switch ev.Key {
	case KeyDigit:
		k.buffer += string(ev.Digit)
		if n, ok := parseQty(k.buffer); ok {
			line.Quantity = max(1, n)
		}
		return EffectConsumed
	case KeyBackspace:
		k.trimBuffer()
		if n, ok := parseQty(k.buffer); ok && k.buffer != "" {
			line.Quantity = max(1, n)
		} else {
			line.Quantity = 1
		}
		return EffectConsumed
	case KeyConfirm:
		if n, ok := parseQty(k.buffer); k.buffer != "" && ok && n > 0 {
			line.Quantity = n
		}
		// Empty or zero buffer keeps the last valid quantity.
		k.reset()
		return EffectConsumed
	case KeyCancel:
		k.cart.RemoveLine(k.active)
		k.reset()
		return EffectConsumed
	default:
		return EffectConsumed
	}
}

// PointerAdd handles a pointer click on a menu item: an existing line at
// the item's current price gets +1, a fresh line goes through the same
// price confirmation as the keyboard flow.
func (k *Keypad) PointerAdd(item ItemSnapshot) error {
	if !k.Idle() {
		return errs.Validation("finish the pending line first")
	}
	if !item.IsAvailable {
		return errs.Unavailable("item unavailable: %s", item.Name)
	}
	if line := k.cart.FindLine(item.MenuItemID, item.Price); line != nil {
		line.Quantity++
		return nil
	}
	line := k.cart.AddLine(item)
	k.enterAwaitingPrice(line.ID)
	return nil
}

// PointerRemove decrements a line, removing it when it reaches zero.
func (k *Keypad) PointerRemove(lineID string) {
	line := k.cart.Line(lineID)
	if line == nil {
		return
	}
	if lineID == k.active {
		// Removing the pending line cancels its entry flow.
		k.reset()
	}
	k.cart.SetQuantity(lineID, line.Quantity-1)
}

// SetLinePrice is the pointer path's direct price entry.
func (k *Keypad) SetLinePrice(lineID string, price decimal.Decimal) error {
	if err := k.cart.SetPrice(lineID, price); err != nil {
		return errs.Validation("%s", err.Error())
	}
	return nil
}

// Clear empties the cart. Refused while a line entry is pending.
func (k *Keypad) Clear() error {
	if !k.Idle() {
		return errs.Validation("finish the pending line first")
	}
	k.cart.Clear()
	return nil
}

func (k *Keypad) enterAwaitingPrice(lineID string) {
	k.active = lineID
	k.buffer = ""
	k.state = StateAwaitingPrice
}

func (k *Keypad) reset() {
	k.active = ""
	k.buffer = ""
	k.state = StateIdle
}

func (k *Keypad) trimBuffer() {
	if len(k.buffer) > 0 {
		k.buffer = k.buffer[:len(k.buffer)-1]
	}
}

func parseQty(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 1_000_000 {
			return 0, false
		}
	}
	return n, true
}
