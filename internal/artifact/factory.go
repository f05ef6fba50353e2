package artifact

import (
	"context"
	"fmt"

	"github.com/dkoroteev/streethunt/internal/config"
)

// NewFromConfig builds the store selected by cfg.ExportBackend.
func NewFromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.ExportBackend {
	case "", "fs":
		return NewFSStore(cfg.ExportDir)
	case "s3":
		return NewS3Store(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown export backend %q", cfg.ExportBackend)
	}
}
