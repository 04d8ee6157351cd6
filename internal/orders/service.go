package orders

import (
	"context"
	"math"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const numberPrefix = "UTS-"

type service struct {
	repo     Repo
	payments Payments
	node     *snowflake.Node
	log      logrus.FieldLogger
}

func NewService(repo Repo, payments Payments, node *snowflake.Node, log logrus.FieldLogger) Service {
	return &service{
		repo:     repo,
		payments: payments,
		node:     node,
		log:      log.WithField("component", "orders"),
	}
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*Order, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	total := Total(req.Items)

	txID, err := s.payments.Charge(ctx, req.PaymentMethod, total)
	if err != nil {
		s.log.WithError(err).Warn("payment declined")
		return nil, errors.Wrap(ErrPaymentFailed, err.Error())
	}

	o := &Order{
		OrderNumber:     numberPrefix + s.node.Generate().String(),
		UserID:          req.UserID,
		Customer:        req.Customer,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   PaymentPaid,
		TransactionID:   txID,
		OrderStatus:     StatusProcessing,
		Total:           total,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_number": o.OrderNumber,
		"total":        o.Total,
		"items":        len(o.Items),
	}).Info("order placed")
	return o, nil
}

func (s *service) Get(ctx context.Context, number string) (*Order, error) {
	return s.repo.GetByNumber(ctx, strings.TrimSpace(number))
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, number string, upd StatusUpdate) (*Order, error) {
	if upd.Status == "" && upd.Tracking == nil && upd.Notes == nil {
		return nil, ErrInvalidStatus
	}
	if upd.Status != "" && !upd.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	o, err := s.repo.Update(ctx, number, upd)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"order_number": number,
		"status":       o.OrderStatus,
		"tracking":     upd.Tracking != nil,
	}).Info("order updated")
	return o, nil
}

// Total sums price times quantity; a missing quantity counts as one.
func Total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(max(it.Qty, 1))
	}
	return math.Round(sum*100) / 100
}

// validate normalizes req in place and reports the first problem found.
func validate(req *CheckoutRequest) error {
	if len(req.Items) == 0 {
		return errors.Wrap(ErrInvalidOrder, "cart is empty")
	}
	for i := range req.Items {
		it := &req.Items[i]
		it.Title = strings.TrimSpace(it.Title)
		if it.Title == "" {
			return errors.Wrap(ErrInvalidOrder, "item title required")
		}
		if it.Price < 0 {
			return errors.Wrap(ErrInvalidOrder, "item price must not be negative")
		}
		if it.Qty <= 0 {
			it.Qty = 1
		}
	}

	req.Customer.Name = strings.TrimSpace(req.Customer.Name)
	req.Customer.Email = strings.TrimSpace(req.Customer.Email)
	if req.Customer.Name == "" || req.Customer.Email == "" {
		return errors.Wrap(ErrInvalidOrder, "customer name and email required")
	}
	if !strings.Contains(req.Customer.Email, "@") {
		return errors.Wrap(ErrInvalidOrder, "invalid email")
	}

	if strings.TrimSpace(req.ShippingAddress.FullAddress) == "" {
		return errors.Wrap(ErrInvalidOrder, "shipping address required")
	}

	req.PaymentMethod = PaymentMethod(strings.ToLower(string(req.PaymentMethod)))
	if !req.PaymentMethod.Valid() {
		return errors.Wrap(ErrInvalidOrder, "payment method must be card or paypal")
	}
	return nil
}
