// Package settings provides repositories for named string settings: API
// credentials, the publishing target, and scheduler state. It is the durable
// key-value store behind the credential store and scheduler components.
package settings

import "context"

// Repository stores named string values. Get returns common.ErrorNotFound
// for names that were never set.
type Repository interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name string, value string) error
	Delete(ctx context.Context, name string) error
}
