package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSObjectStore stores objects in a Google Cloud Storage bucket. The
// bucket is expected to allow public reads; PublicURL does not sign
// anything.
type GCSObjectStore struct {
	client *gcs.Client
	bucket string
}

// NewGCSObjectStore creates the storage client once at server startup.
// Credentials come from credentialsFile when set, otherwise from the
// ambient application-default credentials.
func NewGCSObjectStore(ctx context.Context, bucket string, credentialsFile string) (*GCSObjectStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return &GCSObjectStore{
		client: client,
		bucket: bucket,
	}, nil
}

// Put durably writes one object under key.
func (s *GCSObjectStore) Put(ctx context.Context, key string, contentType string, r io.Reader) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}
	// The upload is not committed until Close returns.
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to commit object %s: %w", key, err)
	}
	return nil
}

// PublicURL returns the bucket's public URL for key.
func (s *GCSObjectStore) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key)
}

// Close releases the underlying client.
func (s *GCSObjectStore) Close() error {
	return s.client.Close()
}
