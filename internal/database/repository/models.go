package repository

import "time"

// Order represents a submitted order row.
type Order struct {
	ID         string
	Quantity   int
	Flavor     string
	PickupDate string
	PriceCents int64
	CreatedAt  time.Time
}
