package bucket_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"font-catalog/core/provider/bucket"
	"font-catalog/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func objectChannel(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestEnumerate_MissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "fonts").Return(false, nil)

	p := bucket.New(mockClient, "fonts", zap.NewNop())
	_, err := p.Enumerate(context.Background())
	assert.ErrorContains(t, err, "does not exist")
}

func TestEnumerate_SkipsNonFontsAndGarbage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "fonts").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "fonts", mock.Anything).
		Return(objectChannel("readme.md", "broken.ttf"))
	mockClient.On("GetObject", mock.Anything, "fonts", "broken.ttf", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("not a font"))), nil)

	p := bucket.New(mockClient, "fonts", zap.NewNop())
	families, err := p.Enumerate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, families)

	// readme.md must never be fetched.
	mockClient.AssertNotCalled(t, "GetObject", mock.Anything, "fonts", "readme.md", mock.Anything)
}
