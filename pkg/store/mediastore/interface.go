package mediastore

import "context"

// MediaStore is the blob store for uploaded files and post images.
type MediaStore interface {
	// Put stores data under key. contentType may be empty.
	Put(ctx context.Context, key string, contentType string, data []byte) error
	// URL returns the public retrieval URL for key.
	URL(key string) string
}
