// Package blobstore is the client-persisted blob collaborator: a single
// string-valued blob per client token, with an expiry refreshed on every
// write. The guest cart is its only consumer; the blob's internal structure
// is private to that caller.
package blobstore

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("blobstore: key not found")

//go:generate mockgen -source=blobstore.go -destination=../mock/blobstore/blobstore_mock.go -package=mock
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
