package assistant

import (
	"cmp"
	"fmt"
	"slices"
)

type Category string

const (
	CategoryLaptop    Category = "laptop"
	CategoryPhone     Category = "phone"
	CategoryAudio     Category = "audio"
	CategoryVR        Category = "vr"
	CategoryConsole   Category = "console"
	CategoryMonitor   Category = "monitor"
	CategoryAccessory Category = "accessory"
	CategoryProjector Category = "projector"
	CategorySmartHome Category = "smart-home"
	CategoryRobotics  Category = "robotics"
	CategoryChair     Category = "chair"
	CategoryStorage   Category = "storage"
	CategoryTablet    Category = "tablet"
	CategoryCamera    Category = "camera"
	CategoryDrone     Category = "drone"
)

var categories = []Category{
	CategoryLaptop, CategoryPhone, CategoryAudio, CategoryVR, CategoryConsole,
	CategoryMonitor, CategoryAccessory, CategoryProjector, CategorySmartHome,
	CategoryRobotics, CategoryChair, CategoryStorage, CategoryTablet,
	CategoryCamera, CategoryDrone,
}

// Categories returns every category a catalog item may carry.
func Categories() []Category {
	return slices.Clone(categories)
}

func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

// Item is one catalog entry. Use is informational and never matched.
type Item struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
	Use      string   `json:"use"`
}

// Catalog is an immutable, ordered product table.
type Catalog struct {
	items []Item
}

func NewCatalog(items []Item) (*Catalog, error) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate item %q", it.Name)
		}
		if !it.Category.Valid() {
			return nil, fmt.Errorf("catalog: item %q has unknown category %q", it.Name, it.Category)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("catalog: item %q has negative price", it.Name)
		}
		seen[it.Name] = struct{}{}
	}
	return &Catalog{items: slices.Clone(items)}, nil
}

func MustCatalog(items []Item) *Catalog {
	c, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog is the storefront's sample table.
func DefaultCatalog() *Catalog {
	return MustCatalog([]Item{
		{Name: "Premium Ultrabook", Category: CategoryLaptop, Price: 1299, Use: "work + travel"},
		{Name: "Gaming Laptop RTX", Category: CategoryLaptop, Price: 1899, Use: "gaming"},
		{Name: "Smartphone Pro Max", Category: CategoryPhone, Price: 999, Use: "flagship"},
		{Name: "Studio Headphones", Category: CategoryAudio, Price: 349, Use: "monitoring"},
		{Name: "VR Headset System", Category: CategoryVR, Price: 399, Use: "immersive"},
		{Name: "Next-Gen Console", Category: CategoryConsole, Price: 499, Use: "gaming"},
		{Name: `4K Monitor 27"`, Category: CategoryMonitor, Price: 459, Use: "creator"},
		{Name: "USB-C Docking Station", Category: CategoryAccessory, Price: 129, Use: "desk"},
		{Name: "Mechanical RGB Keyboard", Category: CategoryAccessory, Price: 149, Use: "typing"},
		{Name: "Wireless Gaming Mouse", Category: CategoryAccessory, Price: 89, Use: "gaming"},
		{Name: "Portable Projector", Category: CategoryProjector, Price: 349, Use: "travel"},
		{Name: "Smart Home Security Cam", Category: CategorySmartHome, Price: 199, Use: "security"},
		{Name: "Smart Speaker Home", Category: CategorySmartHome, Price: 129, Use: "assistant"},
		{Name: "Educational Robot Kit", Category: CategoryRobotics, Price: 189, Use: "kids"},
		{Name: "Pro Robotics Arm Kit", Category: CategoryRobotics, Price: 799, Use: "builders"},
		{Name: "Ergonomic Chair", Category: CategoryChair, Price: 299, Use: "comfort"},
	})
}

// Items returns a copy of the table in catalog order.
func (c *Catalog) Items() []Item {
	return slices.Clone(c.items)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// ByCategory returns the items of one category, cheapest first.
func (c *Catalog) ByCategory(cat Category) []Item {
	return c.filterSorted(func(it Item) bool { return it.Category == cat })
}

// WithinBudget returns the items priced at or under budget, cheapest first.
func (c *Catalog) WithinBudget(budget float64) []Item {
	return c.filterSorted(func(it Item) bool { return it.Price <= budget })
}

// Find returns the first item in catalog order that satisfies match.
func (c *Catalog) Find(match func(Item) bool) (Item, bool) {
	for _, it := range c.items {
		if match(it) {
			return it, true
		}
	}
	return Item{}, false
}

// Sample shuffles a copy of the table and returns its first n items.
func (c *Catalog) Sample(r Random, n int) []Item {
	out := slices.Clone(c.items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n < len(out) {
		out = out[:max(n, 0)]
	}
	return out
}

func (c *Catalog) filterSorted(keep func(Item) bool) []Item {
	var out []Item
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	slices.SortStableFunc(out, func(a, b Item) int { return cmp.Compare(a.Price, b.Price) })
	return out
}
