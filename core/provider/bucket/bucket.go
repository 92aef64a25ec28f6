// Package bucket provides a font enumeration provider that reads font files
// out of an object storage bucket (S3/MinIO) and parses their metadata.
package bucket

import (
	"context"
	"fmt"
	"io"

	"font-catalog/core/catalog"
	"font-catalog/core/fontfile"
	"font-catalog/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Provider enumerates fonts from one storage bucket.
type Provider struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// New creates a bucket-backed provider.
func New(client storage.Client, bucket string, logger *zap.Logger) *Provider {
	return &Provider{client: client, bucket: bucket, logger: logger}
}

// Enumerate implements catalog.Provider. The object listing order fixes the
// enumeration order; corrupt objects are skipped the same way the directory
// scanner skips corrupt files.
func (p *Provider) Enumerate(ctx context.Context) ([]catalog.FamilyInfo, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", p.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("font bucket %s does not exist", p.bucket)
	}

	var (
		order   []string
		grouped = make(map[string][]catalog.FaceInfo)
	)

	for obj := range p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("listing bucket %s: %w", p.bucket, obj.Err)
		}
		if !fontfile.IsFontFile(obj.Key) {
			continue
		}

		data, err := p.readObject(ctx, obj.Key)
		if err != nil {
			p.logger.Warn("Skipping unreadable font object", zap.String("key", obj.Key), zap.Error(err))
			continue
		}
		family, face, err := fontfile.Parse(data, obj.Key)
		if err != nil {
			p.logger.Debug("Skipping unparsable font object", zap.String("key", obj.Key), zap.Error(err))
			continue
		}

		if _, seen := grouped[family]; !seen {
			order = append(order, family)
		}
		grouped[family] = append(grouped[family], face)
	}

	families := make([]catalog.FamilyInfo, 0, len(order))
	for _, name := range order {
		families = append(families, catalog.FamilyInfo{Name: name, Faces: grouped[name]})
	}
	return families, nil
}

func (p *Provider) readObject(ctx context.Context, key string) ([]byte, error) {
	rc, err := p.client.GetObject(ctx, p.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
