package repositories

import "context"

// Session runs fn with every gateway call issued through ctx bound to the
// same database connection.
type Session interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
