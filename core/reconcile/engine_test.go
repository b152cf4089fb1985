package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileAll(t *testing.T) {
	catalog := NewStaticSource("catalog", []string{"a", "b", "c", ""})
	vendor := NewStaticSource("vendor", []string{"b", "c", "d"})

	report, err := ReconcileAll(context.Background(), catalog, vendor)
	require.NoError(t, err)

	assert.Equal(t, []string{"catalog", "vendor"}, report.Sources)
	assert.Equal(t, 4, report.Summary.TotalKeys)
	assert.Equal(t, 2, report.Summary.Complete)
	assert.Equal(t, map[string]int{"catalog": 3, "vendor": 3}, report.Summary.Sizes)
	assert.Equal(t, map[string]int{"catalog": 1, "vendor": 1}, report.Summary.Missing)

	require.Len(t, report.Results, 2)
	assert.Equal(t, ReconcileResult{Key: "a", Present: []string{"catalog"}, Missing: []string{"vendor"}}, report.Results[0])
	assert.Equal(t, ReconcileResult{Key: "d", Present: []string{"vendor"}, Missing: []string{"catalog"}}, report.Results[1])

	assert.Equal(t, []string{"a"}, report.MissingFrom("vendor"))
	assert.Equal(t, []string{"d"}, report.MissingFrom("catalog"))
	assert.Empty(t, report.MissingFrom("unknown"))
}

func TestReconcileAll_ThreeSources(t *testing.T) {
	report, err := ReconcileAll(context.Background(),
		NewStaticSource("one", []string{"x", "y"}),
		NewStaticSource("two", []string{"x"}),
		NewFuncSource("three", func(ctx context.Context) ([]string, error) {
			return []string{"x", "z"}, nil
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.TotalKeys)
	assert.Equal(t, 1, report.Summary.Complete)
	assert.Equal(t, map[string]int{"one": 1, "two": 2, "three": 1}, report.Summary.Missing)
	assert.Equal(t, []string{"one"}, report.Results[0].Present)
	assert.Equal(t, []string{"two", "three"}, report.Results[0].Missing)
}

func TestReconcileAll_Errors(t *testing.T) {
	tests := []struct {
		name      string
		sources   []Source
		expectErr string
	}{
		{
			name:      "Single source",
			sources:   []Source{NewStaticSource("only", nil)},
			expectErr: ErrTooFewSources.Error(),
		},
		{
			name: "Load error",
			sources: []Source{
				NewStaticSource("catalog", []string{"a"}),
				NewFuncSource("history", func(ctx context.Context) ([]string, error) {
					return nil, errors.New("connection refused")
				}),
			},
			expectErr: "failed to load history keys: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := ReconcileAll(context.Background(), tt.sources...)
			assert.Nil(t, report)
			assert.EqualError(t, err, tt.expectErr)
		})
	}
}

func TestCompare_AllComplete(t *testing.T) {
	set := map[string]struct{}{"k": {}}
	report := Compare([]string{"a", "b"}, []map[string]struct{}{set, set})

	assert.Equal(t, 1, report.Summary.Complete)
	assert.NotNil(t, report.Results)
	assert.Empty(t, report.Results)
}
