// Package gate implements the PIN screen that precedes every panel.
package gate

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Local storage layout
const (
	AuthKey            = "study-auth"
	AuthenticatedValue = "authenticated"
	PINKey             = "study-pin"
)

// PINLength is the exact length of a valid PIN
const PINLength = 4

// DefaultPIN is used when no PIN is configured
const DefaultPIN = "2024"

var (
	ErrInvalidPIN  = errors.New("invalid PIN")
	ErrPINMismatch = errors.New("PINs don't match")
	ErrPINLength   = fmt.Errorf("PIN must be %d digits", PINLength)
)

// Storage is the persisted key/value store the gate flag lives in
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// Gate guards access to the dashboard
type Gate struct {
	storage  Storage
	pinHash  []byte
	cost     int
	unlocked bool
}

// Option configures a Gate
type Option func(*Gate)

// WithCost sets the bcrypt cost used for PIN hashes
func WithCost(cost int) Option {
	return func(g *Gate) { g.cost = cost }
}

// New creates a gate. A PIN previously changed through ChangePIN takes
// precedence over pin; the persisted auth flag skips the gate entirely.
func New(storage Storage, pin string, opts ...Option) (*Gate, error) {
	g := &Gate{storage: storage, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(g)
	}

	stored, ok, err := storage.GetItem(PINKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read pin: %w", err)
	}
	if ok {
		g.pinHash = []byte(stored)
	} else {
		if pin == "" {
			pin = DefaultPIN
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pin), g.cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash pin: %w", err)
		}
		g.pinHash = hash
	}

	flag, ok, err := storage.GetItem(AuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth flag: %w", err)
	}
	g.unlocked = ok && flag == AuthenticatedValue

	return g, nil
}

// Unlocked reports whether the dashboard is accessible
func (g *Gate) Unlocked() bool {
	return g.unlocked
}

func (g *Gate) matches(pin string) bool {
	return bcrypt.CompareHashAndPassword(g.pinHash, []byte(pin)) == nil
}

// Attempt compares input against the PIN. On a match the gate unlocks and
// persists the auth flag; otherwise it stays locked and returns ErrInvalidPIN.
func (g *Gate) Attempt(input string) error {
	if len(input) != PINLength || !g.matches(input) {
		return ErrInvalidPIN
	}
	if err := g.storage.SetItem(AuthKey, AuthenticatedValue); err != nil {
		return fmt.Errorf("failed to persist auth flag: %w", err)
	}
	g.unlocked = true
	return nil
}

// Lock clears the persisted flag so the next start shows the gate again
func (g *Gate) Lock() error {
	if err := g.storage.RemoveItem(AuthKey); err != nil {
		return fmt.Errorf("failed to clear auth flag: %w", err)
	}
	g.unlocked = false
	return nil
}

// ChangePIN replaces the PIN after checking the current one
func (g *Gate) ChangePIN(current, next, confirm string) error {
	if !g.matches(current) {
		return ErrInvalidPIN
	}
	if next != confirm {
		return ErrPINMismatch
	}
	if len(next) != PINLength {
		return ErrPINLength
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), g.cost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	if err := g.storage.SetItem(PINKey, string(hash)); err != nil {
		return fmt.Errorf("failed to persist pin: %w", err)
	}
	g.pinHash = hash
	return nil
}
