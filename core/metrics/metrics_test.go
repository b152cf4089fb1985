package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDatasetLoad(t *testing.T) {
	before := testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("catalog", "cache", "ok"))
	RecordDatasetLoad("catalog", "cache", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("catalog", "cache", "ok")))

	beforeErr := testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("prices", "remote", "error"))
	RecordDatasetLoad("prices", "remote", errors.New("boom"))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("prices", "remote", "error")))
}

func TestRecordIndex(t *testing.T) {
	RecordIndex(10, 7, 1)
	assert.Equal(t, 10.0, testutil.ToFloat64(CatalogItems))
	assert.Equal(t, 7.0, testutil.ToFloat64(ResolvedItems))
	assert.Equal(t, 1.0, testutil.ToFloat64(IndexKeyCollisions))
}

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
	assert.NotNil(t, Handler())
}
