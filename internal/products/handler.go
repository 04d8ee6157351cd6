package products

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Vovarama1992/jannu-assistant/internal/assistant"
	"github.com/Vovarama1992/jannu-assistant/internal/httpx"
)

type Handler struct {
	catalog *assistant.Catalog
}

func NewHandler(catalog *assistant.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List returns the catalog, optionally narrowed by ?category= and ?max_price=.
// Filtered results come back cheapest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cat := assistant.Category(strings.ToLower(strings.TrimSpace(q.Get("category"))))
	if cat != "" && !cat.Valid() {
		httpx.Error(w, http.StatusBadRequest, "unknown category")
		return
	}

	maxPrice := -1.0
	if raw := strings.TrimSpace(q.Get("max_price")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			httpx.Error(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		maxPrice = v
	}

	var items []assistant.Item
	switch {
	case cat != "" && maxPrice >= 0:
		for _, it := range h.catalog.ByCategory(cat) {
			if it.Price <= maxPrice {
				items = append(items, it)
			}
		}
	case cat != "":
		items = h.catalog.ByCategory(cat)
	case maxPrice >= 0:
		items = h.catalog.WithinBudget(maxPrice)
	default:
		items = h.catalog.Items()
	}
	if items == nil {
		items = []assistant.Item{}
	}

	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, assistant.Categories())
}
