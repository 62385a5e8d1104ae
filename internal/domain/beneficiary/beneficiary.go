package beneficiary

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Common errors
var (
	ErrNameRequired    = errors.New("beneficiary name cannot be empty")
	ErrContactRequired = errors.New("beneficiary needs a phone number or a RIB")
)

// Beneficiary is a saved transfer destination: a wallet phone number, a bank
// account (RIB), or both.
type Beneficiary struct {
	ID          int64
	Name        string
	PhoneNumber string
	RIB         string
	Email       string
	CreatedAt   time.Time
	Visible     bool
}

// New validates and builds an unsaved beneficiary; the store assigns its id.
func New(name, phoneNumber, rib, email string) (*Beneficiary, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if phoneNumber == "" && rib == "" {
		return nil, ErrContactRequired
	}
	return &Beneficiary{
		Name:        name,
		PhoneNumber: phoneNumber,
		RIB:         rib,
		Email:       email,
		CreatedAt:   time.Now(),
		Visible:     true,
	}, nil
}

// Repository defines beneficiary fixture operations
type Repository interface {
	List(ctx context.Context) ([]*Beneficiary, error)
	Create(ctx context.Context, b *Beneficiary) (*Beneficiary, error)
}
