// Package metadata is the device-local key-value storage used to persist
// the authenticated session between runs.
//
// Two implementations are provided: SQLiteRepository (table "metadata",
// created by the embedded migrations) and BoltRepository (bucket "metadata"
// in a BoltDB file). Both return (nil, nil) from Get when a key is absent and
// treat Delete of an absent key as success.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
