package snapshot

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// BuildFunc produces a new immutable value. force asks the builder to bypass local caches.
type BuildFunc[T any] func(ctx context.Context, force bool) (*T, error)

type entry[T any] struct {
	value *T
	built time.Time
}

// Holder publishes an immutable value and replaces it wholesale on refresh.
// Readers never observe a partially built value.
type Holder[T any] struct {
	current atomic.Pointer[entry[T]]
	sf      singleflight.Group
	build   BuildFunc[T]
}

// NewHolder creates an empty holder.
func NewHolder[T any](build BuildFunc[T]) *Holder[T] {
	return &Holder[T]{build: build}
}

// Get returns the published value, or nil before the first build.
func (h *Holder[T]) Get() *T {
	if e := h.current.Load(); e != nil {
		return e.value
	}
	return nil
}

// Built returns when the published value was built (zero before the first build).
func (h *Holder[T]) Built() time.Time {
	if e := h.current.Load(); e != nil {
		return e.built
	}
	return time.Time{}
}

// Load returns the published value, building it first if nothing has been published yet.
func (h *Holder[T]) Load(ctx context.Context) (*T, error) {
	if v := h.Get(); v != nil {
		return v, nil
	}
	return h.Refresh(ctx, false)
}

// Refresh builds a new value and publishes it. Concurrent refreshes with the same force flag
// share a single build. On error the previously published value stays in place.
func (h *Holder[T]) Refresh(ctx context.Context, force bool) (*T, error) {
	key := "cached"
	if force {
		key = "forced"
	}

	result, err, _ := h.sf.Do(key, func() (interface{}, error) {
		// Double-check: a non-forced refresh racing the first build can reuse its result.
		if !force {
			if v := h.Get(); v != nil {
				return v, nil
			}
		}

		v, err := h.build(ctx, force)
		if err != nil {
			return nil, err
		}
		h.Replace(v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*T), nil
}

// Replace publishes v directly.
func (h *Holder[T]) Replace(v *T) {
	h.current.Store(&entry[T]{value: v, built: time.Now()})
}
