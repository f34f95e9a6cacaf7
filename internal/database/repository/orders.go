package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get for unknown ids.
var ErrNotFound = errors.New("repository: not found")

// OrderRepo handles submitted orders. Rows are append-only.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Insert(ctx context.Context, o Order) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO orders(id, quantity, flavor, pickup_date, price_cents, created_at)
	VALUES(?, ?, ?, ?, ?, ?);
	`, o.ID, o.Quantity, o.Flavor, o.PickupDate, o.PriceCents, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, quantity, flavor, pickup_date, price_cents, created_at FROM orders WHERE id = ?`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

// List returns orders newest first. limit <= 0 means no limit.
func (r *OrderRepo) List(ctx context.Context, limit int) ([]Order, error) {
	query := "SELECT id, quantity, flavor, pickup_date, price_cents, created_at FROM orders ORDER BY created_at DESC, rowid DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s scanner) (Order, error) {
	var o Order
	err := s.Scan(&o.ID, &o.Quantity, &o.Flavor, &o.PickupDate, &o.PriceCents, &o.CreatedAt)
	return o, err
}
