package blob

import (
	"bytes"
	"context"
	"io"
	"testing"

	"feather/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newS3Store(t *testing.T, mockClient *mocks.Client) *S3Store {
	mockClient.On("BucketExists", mock.Anything, "feather").Return(true, nil).Once()
	store, err := NewS3Store(context.Background(), mockClient, "feather", "cache/")
	require.NoError(t, err)
	return store
}

func TestNewS3Store_CreatesMissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "feather").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "feather", mock.Anything).Return(nil)

	_, err := NewS3Store(context.Background(), mockClient, "feather", "cache/")
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestNewS3Store_BucketCheckFails(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "feather").Return(false, assert.AnError)

	_, err := NewS3Store(context.Background(), mockClient, "feather", "cache/")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestS3Store_Read(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockClient := new(mocks.Client)
		store := newS3Store(t, mockClient)
		mockClient.On("GetObject", mock.Anything, "feather", "cache/prices.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{"x":{}}`))), nil)

		data, err := store.Read(context.Background(), "prices.json")
		require.NoError(t, err)
		assert.Equal(t, `{"x":{}}`, string(data))
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		mockClient := new(mocks.Client)
		store := newS3Store(t, mockClient)
		mockClient.On("GetObject", mock.Anything, "feather", "cache/prices.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		_, err := store.Read(context.Background(), "prices.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("OtherFailure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		store := newS3Store(t, mockClient)
		mockClient.On("GetObject", mock.Anything, "feather", "cache/prices.json", mock.Anything).
			Return(nil, assert.AnError)

		_, err := store.Read(context.Background(), "prices.json")
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestS3Store_Write(t *testing.T) {
	mockClient := new(mocks.Client)
	store := newS3Store(t, mockClient)

	payload := []byte(`{"conversion_rates":{"USD":1}}`)
	mockClient.On("PutObject", mock.Anything, "feather", "cache/exchange.json", mock.Anything, int64(len(payload)), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := store.Write(context.Background(), "exchange.json", payload)
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestS3Store_Exists(t *testing.T) {
	mockClient := new(mocks.Client)
	store := newS3Store(t, mockClient)

	mockClient.On("StatObject", mock.Anything, "feather", "cache/all.json", mock.Anything).
		Return(minio.ObjectInfo{Key: "cache/all.json"}, nil)
	mockClient.On("StatObject", mock.Anything, "feather", "cache/doppler.json", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	mockClient.On("StatObject", mock.Anything, "feather", "cache/prices.json", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "AccessDenied"})

	exists, err := store.Exists(context.Background(), "all.json")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(context.Background(), "doppler.json")
	assert.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Exists(context.Background(), "prices.json")
	assert.ErrorContains(t, err, "failed to stat object prices.json")
}
