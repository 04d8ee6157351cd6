package assistant

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CartLine is a caller-owned cart entry. Missing price reads as 0 and a
// missing or non-positive quantity reads as 1.
type CartLine struct {
	Title string  `json:"title"`
	Name  string  `json:"name,omitempty"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// UnmarshalJSON accepts numbers sent as strings and zeroes anything it
// cannot read, so one bad line never rejects the whole cart.
func (l *CartLine) UnmarshalJSON(b []byte) error {
	var raw struct {
		Title json.RawMessage `json:"title"`
		Name  json.RawMessage `json:"name"`
		Price json.RawMessage `json:"price"`
		Qty   json.RawMessage `json:"qty"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = CartLine{}
		return nil
	}
	*l = CartLine{
		Title: looseString(raw.Title),
		Name:  looseString(raw.Name),
		Price: looseNumber(raw.Price),
		Qty:   int(looseNumber(raw.Qty)),
	}
	return nil
}

func looseString(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func looseNumber(raw json.RawMessage) float64 {
	var f float64
	if json.Unmarshal(raw, &f) != nil {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return 0
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		f = v
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > 1e12 {
		return 0
	}
	return f
}

func (l CartLine) label() string {
	if l.Title != "" {
		return l.Title
	}
	return l.Name
}

func (l CartLine) quantity() int {
	if l.Qty <= 0 {
		return 1
	}
	return l.Qty
}

// LineTotal is price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.quantity())
}

// CartTotal sums the line totals.
func CartTotal(cart []CartLine) float64 {
	var total float64
	for _, l := range cart {
		total += l.LineTotal()
	}
	return total
}

const emptyCartNote = "Your cart is empty. Add items and I will tailor suggestions to them."

// SummarizeCart renders the cart as one sentence with an estimated total.
func SummarizeCart(cart []CartLine) string {
	if len(cart) == 0 {
		return emptyCartNote
	}

	lines := make([]string, 0, len(cart))
	for _, l := range cart {
		lines = append(lines, fmt.Sprintf("%s x%d @ %s", l.label(), l.quantity(), FormatEuro(l.Price)))
	}
	return fmt.Sprintf("You have %d items: %s. Estimated total: %s.",
		len(cart), strings.Join(lines, "; "), FormatEuro(CartTotal(cart)))
}

// FormatEuro renders an amount with no decimals, rounding halves away from zero.
func FormatEuro(amount float64) string {
	return fmt.Sprintf("€%.0f", math.Round(amount))
}

func formatList(items []Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%s)", it.Name, FormatEuro(it.Price)))
	}
	return strings.Join(parts, ", ")
}
