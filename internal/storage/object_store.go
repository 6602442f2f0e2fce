package storage

import (
	"context"
	"io"
)

// ObjectStore writes binary objects to a durable content bucket and
// resolves the public URL objects are served from. There is no delete:
// an object orphaned by a failed listing creation stays in the bucket.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) error
	PublicURL(key string) string
}
