// Package storage implements the local key-value store used for the guest
// cart and the cached auth snapshot.
package storage

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

// blobStore keeps every key as one object in a gocloud bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore returns a LocalStore over bucket. Keys are namespaced by prefix.
func NewBlobStore(bucket *blob.Bucket, prefix string) repository.LocalStore {
	if prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix)
	}

	return &blobStore{bucket: bucket}
}

func (s *blobStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, domainerrors.NewStorageError("get", key, err)
	}

	return string(data), true, nil
}

func (s *blobStore) Set(ctx context.Context, key, value string) error {
	err := s.bucket.WriteAll(ctx, key, []byte(value), &blob.WriterOptions{ContentType: contentTypeJSON})
	if err != nil {
		return domainerrors.NewStorageError("set", key, err)
	}

	return nil
}

func (s *blobStore) Remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return domainerrors.NewStorageError("remove", key, err)
	}

	return nil
}
