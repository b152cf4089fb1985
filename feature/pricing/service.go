package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feather/core/snapshot"
	"feather/feature/exchange"

	"go.uber.org/zap"
)

// MissingEstimate is displayed when no vendor quotes an item.
const MissingEstimate = "Error"

// Quote is a consolidated price rendered in a display currency. Raw amounts stay in USD.
type Quote struct {
	Key         string   `json:"key"`
	Name        string   `json:"name,omitempty"`
	Image       string   `json:"image,omitempty"`
	Phase       string   `json:"phase,omitempty"`
	RarityColor string   `json:"rarity_color,omitempty"`
	Currency    string   `json:"currency"`
	Display     string   `json:"display"`
	Estimate    *float64 `json:"estimate"`
	Steam       *float64 `json:"steam"`
	Skinport    *float64 `json:"skinport"`
	Buff        *float64 `json:"buff"`
}

// StatsView summarizes the published snapshot.
type StatsView struct {
	Stats
	Phases     int       `json:"phases"`
	Currencies int       `json:"currencies"`
	Degraded   bool      `json:"degraded"`
	Report     Report    `json:"report"`
	BuiltAt    time.Time `json:"built_at"`
}

// Service answers price queries from the published snapshot.
type Service struct {
	holder          *snapshot.Holder[Snapshot]
	defaultCurrency string
	logger          *zap.Logger
}

// NewService creates a pricing service over a snapshot holder.
func NewService(holder *snapshot.Holder[Snapshot], defaultCurrency string, logger *zap.Logger) *Service {
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{holder: holder, defaultCurrency: defaultCurrency, logger: logger}
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// Snapshot returns the published snapshot, building it on first use.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	return s.holder.Load(ctx)
}

// Refresh reloads every dataset from its remote source and publishes the result.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	s.logger.Info("Refreshing price snapshot")
	return s.holder.Refresh(ctx, true)
}

// Quote looks up key and renders its estimate in currency (the default currency when empty).
func (s *Service) Quote(ctx context.Context, key, currency string) (*Quote, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	priced, ok := snap.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, key)
	}
	if currency == "" {
		currency = s.defaultCurrency
	}

	formatter := snap.Formatter()
	code, _, _, err := formatter.Resolve(currency)
	if err != nil {
		return nil, err
	}

	q := &Quote{
		Key:      key,
		Name:     priced.Item.Name,
		Image:    priced.Item.Image,
		Phase:    priced.Item.Phase,
		Currency: code,
		Display:  MissingEstimate,
		Estimate: priced.Estimate,
		Steam:    priced.Steam,
		Skinport: priced.Skinport,
		Buff:     priced.Buff,
	}
	if priced.Item.Rarity != nil {
		q.RarityColor = priced.Item.Rarity.Color
	}
	if priced.Estimate != nil {
		display, err := formatter.Format(*priced.Estimate, code)
		switch {
		case errors.Is(err, exchange.ErrInvalidAmount):
			s.logger.Warn("Estimate cannot be formatted", zap.String("key", key), zap.Error(err))
			q.Estimate = nil
		case err != nil:
			return nil, err
		default:
			q.Display = display
		}
	}
	return q, nil
}

// Search returns up to limit keys matching query.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Search(query, limit), nil
}

// Phase returns the doppler phase label of an icon id.
func (s *Service) Phase(ctx context.Context, icon string) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	phase, ok := snap.Phase(icon)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPhaseNotFound, icon)
	}
	return phase, nil
}

// Stats describes the published snapshot.
func (s *Service) Stats(ctx context.Context) (*StatsView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsView{
		Stats:      snap.Stats(),
		Phases:     snap.PhaseCount(),
		Currencies: len(snap.Formatter().Codes()),
		Degraded:   snap.Report().Degraded(),
		Report:     snap.Report(),
		BuiltAt:    snap.BuiltAt(),
	}, nil
}
