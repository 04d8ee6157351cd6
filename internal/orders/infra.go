package orders

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

const orderColumns = `id, order_number, user_id, customer, items, shipping_address, payment_method,
	payment_status, transaction_id, order_status, tracking_info, notes, total, created_at, updated_at`

func (r *repo) Create(ctx context.Context, o *Order) error {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return err
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	addr, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO orders (order_number, user_id, customer, items, shipping_address, payment_method,
			payment_status, transaction_id, order_status, notes, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`,
		o.OrderNumber,
		o.UserID,
		customer,
		items,
		addr,
		string(o.PaymentMethod),
		string(o.PaymentStatus),
		o.TransactionID,
		string(o.OrderStatus),
		o.Notes,
		o.Total,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return errors.Wrap(err, "insert order")
}

func (r *repo) GetByNumber(ctx context.Context, number string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, number)
	return scanOrder(row)
}

func (r *repo) List(ctx context.Context) ([]Order, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
}

func (r *repo) query(ctx context.Context, q string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, number string, upd StatusUpdate) (*Order, error) {
	var tracking, notes any
	if upd.Tracking != nil {
		b, err := json.Marshal(upd.Tracking)
		if err != nil {
			return nil, err
		}
		tracking = string(b)
	}
	if upd.Notes != nil {
		notes = *upd.Notes
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE orders SET
			order_status  = COALESCE(NULLIF($1, ''), order_status),
			tracking_info = COALESCE($2::jsonb, tracking_info),
			notes         = COALESCE($3::text, notes),
			updated_at    = now()
		WHERE order_number = $4
		RETURNING `+orderColumns,
		string(upd.Status), tracking, notes, number,
	)
	return scanOrder(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*Order, error) {
	var (
		o                       Order
		customer, items, addr   []byte
		tracking                []byte
		method, payment, status string
	)
	err := s.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&customer,
		&items,
		&addr,
		&method,
		&payment,
		&o.TransactionID,
		&status,
		&tracking,
		&o.Notes,
		&o.Total,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "scan order")
	}

	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return nil, errors.Wrap(err, "decode customer")
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, errors.Wrap(err, "decode items")
	}
	if err := json.Unmarshal(addr, &o.ShippingAddress); err != nil {
		return nil, errors.Wrap(err, "decode shipping address")
	}
	if len(tracking) > 0 {
		o.Tracking = &Tracking{}
		if err := json.Unmarshal(tracking, o.Tracking); err != nil {
			return nil, errors.Wrap(err, "decode tracking info")
		}
	}
	o.PaymentMethod = PaymentMethod(method)
	o.PaymentStatus = PaymentStatus(payment)
	o.OrderStatus = Status(status)
	return &o, nil
}
