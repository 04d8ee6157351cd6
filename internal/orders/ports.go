package orders

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var statuses = []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

func (s Status) Valid() bool { return slices.Contains(statuses, s) }

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodPayPal PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool { return m == MethodCard || m == MethodPayPal }

var (
	ErrNotFound      = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrPaymentFailed = errors.New("payment failed")
)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Address struct {
	FullAddress string `json:"full_address"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
	Country     string `json:"country,omitempty"`
}

type Item struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Tracking is filled in by the back office once a parcel ships.
type Tracking struct {
	Carrier           string     `json:"carrier,omitempty"`
	TrackingNumber    string     `json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

type Order struct {
	ID              int64         `json:"id"`
	OrderNumber     string        `json:"order_number"`
	UserID          string        `json:"user_id,omitempty"`
	Customer        Customer      `json:"customer"`
	Items           []Item        `json:"items"`
	ShippingAddress Address       `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	TransactionID   string        `json:"transaction_id,omitempty"`
	OrderStatus     Status        `json:"order_status"`
	Tracking        *Tracking     `json:"tracking_info,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Total           float64       `json:"total"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CheckoutRequest struct {
	UserID          string        `json:"-"`
	Customer        Customer      `json:"customer"`
	Items           []Item        `json:"items"`
	ShippingAddress Address       `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
}

// StatusUpdate is an admin change. Nil fields and an empty Status are left untouched.
type StatusUpdate struct {
	Status   Status    `json:"order_status"`
	Tracking *Tracking `json:"tracking_info"`
	Notes    *string   `json:"notes"`
}

// Payments charges a customer. The shop runs in test mode, see SimulatedPayments.
type Payments interface {
	Charge(ctx context.Context, method PaymentMethod, amount float64) (txID string, err error)
}

type Repo interface {
	Create(ctx context.Context, o *Order) error
	GetByNumber(ctx context.Context, number string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	Update(ctx context.Context, number string, upd StatusUpdate) (*Order, error)
}

type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*Order, error)
	Get(ctx context.Context, number string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	UpdateStatus(ctx context.Context, number string, upd StatusUpdate) (*Order, error)
}
