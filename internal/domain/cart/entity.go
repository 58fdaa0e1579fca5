// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"sort"
	"strings"
	"time"

	"saidify/internal/domain/pricing"
)

var (
	ErrInvalidCart = errors.New("cart: invalid")
	ErrInvalidLine = errors.New("cart: invalid line")
)

// DefaultCartTTL is the inactivity window after which a server-side cart
// becomes eligible for auto deletion (Firestore TTL configured on expiresAt).
const DefaultCartTTL = 30 * 24 * time.Hour

// Line is one line item in a cart.
// Identity is the (productId, selectedSize, selectedColor) tuple: the same
// product in two sizes is two distinct lines.
type Line struct {
	ProductID     string `json:"productId" firestore:"productId"`
	Title         string `json:"title" firestore:"title"`
	Price         string `json:"price" firestore:"price"`
	Image         string `json:"image" firestore:"image"`
	Quantity      int    `json:"quantity" firestore:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty" firestore:"selectedSize"`
	SelectedColor string `json:"selectedColor,omitempty" firestore:"selectedColor"`
}

// Key identifies a line for merge purposes.
type Key struct {
	ProductID string
	Size      string
	Color     string
}

// Key returns the identity key of the line.
func (l Line) Key() Key {
	return Key{
		ProductID: strings.TrimSpace(l.ProductID),
		Size:      strings.TrimSpace(l.SelectedSize),
		Color:     strings.TrimSpace(l.SelectedColor),
	}
}

// Cart is a cart document.
//   - docId = user uid (Firestore)
//   - ExpiresAt is refreshed on each mutation (Firestore TTL field)
type Cart struct {
	// ID is the Firestore docId (= user uid).
	ID string `json:"id" firestore:"id"`

	// Lines is the list of line items.
	// Uniqueness is defined by (productId, selectedSize, selectedColor).
	Lines []Line `json:"lines" firestore:"lines"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
}

// New creates a new cart doc. id is the Firestore docId (user uid).
// lines can be nil (treated as empty).
func New(id string, lines []Line, now time.Time) (*Cart, error) {
	c := &Cart{
		ID:        strings.TrimSpace(id),
		Lines:     cloneLines(lines),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(DefaultCartTTL),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// AddLine merges line into the cart by identity key.
// An existing line under the same key gets its quantity incremented by
// line.Quantity (never replaced); otherwise the line is appended.
func (c *Cart) AddLine(line Line, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	line.ProductID = strings.TrimSpace(line.ProductID)
	line.SelectedSize = strings.TrimSpace(line.SelectedSize)
	line.SelectedColor = strings.TrimSpace(line.SelectedColor)
	if line.ProductID == "" || line.Quantity < 1 {
		return ErrInvalidLine
	}

	if c.Lines == nil {
		c.Lines = []Line{}
	}

	idx := findLineIndex(c.Lines, line.Key())
	if idx >= 0 {
		c.Lines[idx].Quantity += line.Quantity
		// refresh display fields so stale titles/prices heal on re-add
		c.Lines[idx].Title = line.Title
		c.Lines[idx].Price = line.Price
		c.Lines[idx].Image = line.Image
	} else {
		c.Lines = append(c.Lines, line)
	}

	c.touch(now)
	return c.validate()
}

// SetQuantity sets the quantity for every line matching productID.
// qty below 1 is a no-op: the floor is 1, a decrement never removes a line.
func (c *Cart) SetQuantity(productID string, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return ErrInvalidLine
	}
	if qty < 1 {
		return nil
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == pid {
			c.Lines[i].Quantity = qty
		}
	}

	c.touch(now)
	return c.validate()
}

// RemoveProduct removes ALL lines matching productID, regardless of
// size/color. Removal is keyed by productId alone while add/update key by
// the full identity tuple; see DESIGN.md for why this asymmetry is kept.
func (c *Cart) RemoveProduct(productID string, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return ErrInvalidLine
	}

	kept := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.ProductID != pid {
			kept = append(kept, l)
		}
	}
	c.Lines = kept

	c.touch(now)
	return c.validate()
}

// Replace swaps the whole line list (full-replace push from the client).
func (c *Cart) Replace(lines []Line, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	c.Lines = cloneLines(lines)
	c.touch(now)
	return c.validate()
}

// Clear empties the cart.
func (c *Cart) Clear(now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	c.Lines = []Line{}
	c.touch(now)
	return c.validate()
}

// TotalItems is the sum of quantities across lines.
func (c *Cart) TotalItems() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// Subtotal sums parsed price x quantity over all lines.
func (c *Cart) Subtotal() float64 {
	if c == nil {
		return 0
	}
	sum := 0.0
	for _, l := range c.Lines {
		sum += pricing.ParseAmount(l.Price) * float64(l.Quantity)
	}
	return sum
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(DefaultCartTTL)
}

func (c *Cart) validate() error {
	if c == nil {
		return ErrInvalidCart
	}
	if strings.TrimSpace(c.ID) == "" {
		return ErrInvalidCart
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() || c.ExpiresAt.IsZero() {
		return ErrInvalidCart
	}
	if c.UpdatedAt.Before(c.CreatedAt) {
		return ErrInvalidCart
	}
	if c.ExpiresAt.Before(c.UpdatedAt) {
		return ErrInvalidCart
	}

	if len(c.Lines) == 0 {
		return nil
	}

	// normalize + merge duplicates + stable order
	c.Lines = MergeLines(c.Lines)

	for _, l := range c.Lines {
		if strings.TrimSpace(l.ProductID) == "" || l.Quantity < 1 {
			return ErrInvalidLine
		}
	}
	return nil
}

// ----------------------------
// Helpers
// ----------------------------

func findLineIndex(lines []Line, k Key) int {
	for i := range lines {
		if lines[i].Key() == k {
			return i
		}
	}
	return -1
}

// MergeLines normalizes a line list: drops invalid entries, merges
// duplicates by identity key (summing quantities) and applies a stable
// order. The same normalization runs on both the server cart and the
// client reconciler so the two views of a list never diverge.
func MergeLines(src []Line) []Line {
	m := map[Key]Line{}
	for _, l := range src {
		l.ProductID = strings.TrimSpace(l.ProductID)
		l.SelectedSize = strings.TrimSpace(l.SelectedSize)
		l.SelectedColor = strings.TrimSpace(l.SelectedColor)
		if l.ProductID == "" || l.Quantity < 1 {
			continue
		}

		k := l.Key()
		if exist, ok := m[k]; ok {
			exist.Quantity += l.Quantity
			m[k] = exist
		} else {
			m[k] = l
		}
	}

	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ProductID != keys[j].ProductID {
			return keys[i].ProductID < keys[j].ProductID
		}
		if keys[i].Size != keys[j].Size {
			return keys[i].Size < keys[j].Size
		}
		return keys[i].Color < keys[j].Color
	})

	out := make([]Line, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func cloneLines(src []Line) []Line {
	if len(src) == 0 {
		return []Line{}
	}
	cp := make([]Line, 0, len(src))
	cp = append(cp, src...)
	return MergeLines(cp)
}
