// Package imagestore maps stored object paths to public URLs. Uploads go
// straight from the client to object storage; this service only ever hands
// out read URLs.
package imagestore

import (
	"strings"

	"renthub/internal/pkg/config"
)

type Resolver struct {
	baseURL      string
	itemBucket   string
	avatarBucket string
}

func NewResolver(cfg config.ImageConfig) *Resolver {
	return &Resolver{
		baseURL:      strings.TrimRight(cfg.PublicBaseURL, "/"),
		itemBucket:   cfg.ItemBucket,
		avatarBucket: cfg.AvatarBucket,
	}
}

func (r *Resolver) ItemImageURL(path string) string {
	return r.join(r.itemBucket, path)
}

func (r *Resolver) AvatarURL(path string) string {
	return r.join(r.avatarBucket, path)
}

func (r *Resolver) join(bucket, path string) string {
	// Paths written before the bucket split may already carry a full URL.
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return r.baseURL + "/" + bucket + "/" + strings.TrimLeft(path, "/")
}
