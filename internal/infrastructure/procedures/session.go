package procedures

import (
	"context"

	"gorm.io/gorm"
	domainRepos "hackathon-catalog.backend/internal/domain/repositories"
)

type contextKey string

const connKey contextKey = "procedures_conn"

// GormSession pins one pooled connection for the calls issued inside Do.
type GormSession struct {
	db *gorm.DB
}

var _ domainRepos.Session = (*GormSession)(nil)

func NewSession(db *gorm.DB) *GormSession {
	return &GormSession{db: db}
}

// Do runs fn on a single connection. Nested calls reuse the outer one.
func (s *GormSession) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(connKey).(*gorm.DB); ok {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(context.WithValue(ctx, connKey, conn))
	})
}

// GetDB returns the connection pinned in ctx, or fallback when none is.
func GetDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if conn, ok := ctx.Value(connKey).(*gorm.DB); ok {
		return conn
	}
	return fallback
}
