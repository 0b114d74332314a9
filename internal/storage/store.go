package storage

import (
	"context"
	"errors"
)

// Fixed store keys shared by the storefront and the admin panel. Both
// surfaces read and write the same two JSON blobs plus the auth flag.
const (
	KeyProducts  = "akron_products"
	KeyHero      = "akron_hero"
	KeyAdminAuth = "akron_admin_auth"
)

// ErrNotFound is returned by Get when a key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is the persistent key-value collaborator assumed by the system.
// Values are opaque strings; the repository layer owns the JSON convention.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
