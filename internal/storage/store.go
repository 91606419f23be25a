// Package storage abstracts the object store holding uploaded
// acknowledgement documents.
package storage

import "context"

// ObjectStore persists uploaded files. Put returns a locator of the form
// "<bucket>/<key>" that is stored on the wallet transaction.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, data []byte) (string, error)
	Delete(ctx context.Context, locator string) error
}
