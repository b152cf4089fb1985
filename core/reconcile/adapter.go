package reconcile

import "context"

// Source is one side of a reconciliation.
type Source interface {
	// Name identifies the source in results (e.g. "catalog", "history").
	Name() string

	// Keys returns every key the source holds. Implementations should load the whole set in one
	// pass rather than answering per-key lookups.
	Keys(ctx context.Context) (map[string]struct{}, error)
}

// StaticSource is a Source over keys already in memory.
type StaticSource struct {
	name string
	set  map[string]struct{}
}

// NewStaticSource builds a source from keys. Empty keys are ignored.
func NewStaticSource(name string, keys []string) *StaticSource {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k != "" {
			set[k] = struct{}{}
		}
	}
	return &StaticSource{name: name, set: set}
}

func (s *StaticSource) Name() string {
	return s.name
}

func (s *StaticSource) Keys(ctx context.Context) (map[string]struct{}, error) {
	return s.set, nil
}

// FuncSource adapts a loader function to Source.
type FuncSource struct {
	name string
	load func(ctx context.Context) ([]string, error)
}

// NewFuncSource wraps load. The function runs on every Keys call.
func NewFuncSource(name string, load func(ctx context.Context) ([]string, error)) *FuncSource {
	return &FuncSource{name: name, load: load}
}

func (s *FuncSource) Name() string {
	return s.name
}

func (s *FuncSource) Keys(ctx context.Context) (map[string]struct{}, error) {
	keys, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return NewStaticSource(s.name, keys).set, nil
}
