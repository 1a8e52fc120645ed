package domain

import "time"

// Customer represents a registered customer of the shop.
// A customer maps 1:1 to an account in the identity layer; by the time
// the core is invoked the customer id is already authenticated.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	RegisteredAt time.Time
}
