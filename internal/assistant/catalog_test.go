package assistant

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestByCategorySortedByPrice(t *testing.T) {
	c := DefaultCatalog()

	got := names(c.ByCategory(CategoryAccessory))
	want := []string{"Wireless Gaming Mouse", "USB-C Docking Station", "Mechanical RGB Keyboard"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if again := names(c.ByCategory(CategoryAccessory)); !slices.Equal(got, again) {
		t.Fatalf("repeated query differs: %v vs %v", got, again)
	}
}

func TestWithinBudgetNeverExceeds(t *testing.T) {
	c := DefaultCatalog()

	for _, budget := range []float64{10, 89, 130, 300, 999, 5000} {
		fits := c.WithinBudget(budget)
		for i, it := range fits {
			if it.Price > budget {
				t.Fatalf("budget %v: %s costs %v", budget, it.Name, it.Price)
			}
			if i > 0 && fits[i-1].Price > it.Price {
				t.Fatalf("budget %v: results not ascending at %d", budget, i)
			}
		}
		if again := c.WithinBudget(budget); !slices.Equal(names(fits), names(again)) {
			t.Fatalf("budget %v: repeated query differs", budget)
		}
	}

	if fits := c.WithinBudget(10); len(fits) != 0 {
		t.Fatalf("expected no fits under 10, got %v", names(fits))
	}
	if fits := c.WithinBudget(5000); len(fits) != c.Len() {
		t.Fatalf("expected every item under 5000, got %d", len(fits))
	}
}

func TestSampleReturnsDistinctCatalogItems(t *testing.T) {
	c := DefaultCatalog()
	r := rand.New(rand.NewPCG(1, 2))

	got := c.Sample(r, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	all := names(c.Items())
	seen := map[string]bool{}
	for _, it := range got {
		if !slices.Contains(all, it.Name) {
			t.Fatalf("%s is not in the catalog", it.Name)
		}
		if seen[it.Name] {
			t.Fatalf("%s sampled twice", it.Name)
		}
		seen[it.Name] = true
	}

	if got := c.Sample(r, 100); len(got) != c.Len() {
		t.Fatalf("expected whole catalog, got %d", len(got))
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := DefaultCatalog()

	items := c.Items()
	items[0].Price = 1
	if c.Items()[0].Price != 1299 {
		t.Fatal("mutating Items() leaked into the catalog")
	}
}

func TestNewCatalogValidation(t *testing.T) {
	cases := []struct {
		name  string
		items []Item
	}{
		{"duplicate", []Item{{Name: "A", Category: CategoryLaptop}, {Name: "A", Category: CategoryPhone}}},
		{"unknown category", []Item{{Name: "A", Category: "toaster"}}},
		{"negative price", []Item{{Name: "A", Category: CategoryLaptop, Price: -1}}},
	}

	for _, tc := range cases {
		if _, err := NewCatalog(tc.items); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
