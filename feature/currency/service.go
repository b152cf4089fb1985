package currency

import (
	"context"

	"feather/feature/exchange"
	"feather/feature/pricing"
)

// Snapshots yields the published pricing snapshot.
type Snapshots interface {
	Snapshot(ctx context.Context) (*pricing.Snapshot, error)
}

// Conversion is a formatted amount.
type Conversion struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Amount   string  `json:"amount"`
	Display  string  `json:"display"`
}

// Service exposes the currency table of the published snapshot.
type Service struct {
	snapshots Snapshots
}

// NewService creates a currency service.
func NewService(snapshots Snapshots) *Service {
	return &Service{snapshots: snapshots}
}

func (s *Service) formatter(ctx context.Context) (*exchange.Formatter, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Formatter(), nil
}

// Codes lists the supported display currencies.
func (s *Service) Codes(ctx context.Context) ([]string, error) {
	f, err := s.formatter(ctx)
	if err != nil {
		return nil, err
	}
	return f.Codes(), nil
}

// Complete returns up to limit codes starting with prefix.
func (s *Service) Complete(ctx context.Context, prefix string, limit int) ([]string, error) {
	f, err := s.formatter(ctx)
	if err != nil {
		return nil, err
	}
	return f.Complete(prefix, limit), nil
}

// Format converts a USD value into code.
func (s *Service) Format(ctx context.Context, value float64, code string) (*Conversion, error) {
	f, err := s.formatter(ctx)
	if err != nil {
		return nil, err
	}

	amount, resolved, err := f.Convert(value, code)
	if err != nil {
		return nil, err
	}
	display, err := f.Format(value, resolved)
	if err != nil {
		return nil, err
	}
	return &Conversion{
		Value:    value,
		Currency: resolved,
		Amount:   amount.StringFixed(2),
		Display:  display,
	}, nil
}
