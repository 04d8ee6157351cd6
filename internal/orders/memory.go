package orders

import (
	"context"
	"slices"
	"sync"
	"time"
)

type memoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byNum  map[string]*Order
}

func NewMemoryRepo() Repo {
	return &memoryRepo{byNum: make(map[string]*Order)}
}

func (r *memoryRepo) Create(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()
	o.ID = r.nextID
	o.CreatedAt = now
	o.UpdatedAt = now

	stored := clone(o)
	r.byNum[o.OrderNumber] = &stored
	return nil
}

func (r *memoryRepo) GetByNumber(_ context.Context, number string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byNum[number]
	if !ok {
		return nil, ErrNotFound
	}
	out := clone(o)
	return &out, nil
}

func (r *memoryRepo) List(_ context.Context) ([]Order, error) {
	return r.collect(func(*Order) bool { return true }), nil
}

func (r *memoryRepo) ListByUser(_ context.Context, userID string) ([]Order, error) {
	return r.collect(func(o *Order) bool { return o.UserID == userID }), nil
}

// collect returns copies of the matching orders, newest first.
func (r *memoryRepo) collect(keep func(*Order) bool) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Order{}
	for _, o := range r.byNum {
		if keep(o) {
			out = append(out, clone(o))
		}
	}
	slices.SortFunc(out, func(a, b Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return out
}

func (r *memoryRepo) Update(_ context.Context, number string, upd StatusUpdate) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byNum[number]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Status != "" {
		o.OrderStatus = upd.Status
	}
	if upd.Tracking != nil {
		t := *upd.Tracking
		o.Tracking = &t
	}
	if upd.Notes != nil {
		o.Notes = *upd.Notes
	}
	o.UpdatedAt = time.Now().UTC()

	out := clone(o)
	return &out, nil
}

func clone(o *Order) Order {
	out := *o
	out.Items = slices.Clone(o.Items)
	if o.Tracking != nil {
		t := *o.Tracking
		out.Tracking = &t
	}
	return out
}
