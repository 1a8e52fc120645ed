package domain

import "time"

// Barber represents a barber working at the shop
type Barber struct {
	ID        int64
	Name      string
	Specialty string
	PhotoURL  *string
	Active    bool
	CreatedAt time.Time
}

// IsBookable returns true if the barber participates in booking flows
func (b *Barber) IsBookable() bool {
	return b.Active
}
