package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"hackathon-catalog.backend/internal/interfaces/http/response"
	"hackathon-catalog.backend/pkg/logger"
	"hackathon-catalog.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second

	processingMarker = "processing"
)

// IdempotencyStore is the subset of pkg/redis.Store the middleware needs.
// Get returns redis.ErrMiss for an unknown key.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a request repeats an
// Idempotency-Key already seen on the same route, so a client retrying a POST
// does not create a second team. Without a store, or when the store fails,
// requests pass through.
func IdempotencyMiddleware(store IdempotencyStore, retention time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" || store == nil {
			c.Next()
			return
		}

		storageKey := fmt.Sprintf("idempotency:%s:%s:%s", c.Request.Method, c.FullPath(), key)
		ctx := c.Request.Context()

		val, err := store.Get(ctx, storageKey)
		switch {
		case err == nil:
			replay(c, val)
			return
		case !errors.Is(err, redis.ErrMiss):
			logger.Warn(ctx, "Idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := store.SetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Request in progress"})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 || c.GetBool(response.SkipReplayKey) {
			// allow the client to retry
			_ = store.Del(ctx, storageKey)
			return
		}
		record, err := json.Marshal(storedResponse{Status: status, Body: w.body.String()})
		if err == nil {
			err = store.Set(ctx, storageKey, string(record), retention)
		}
		if err != nil {
			logger.Warn(ctx, "Failed to store idempotent response", zap.Error(err))
			_ = store.Del(ctx, storageKey)
		}
	}
}

func replay(c *gin.Context, val string) {
	if val == processingMarker {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Request already in progress"})
		return
	}
	var record storedResponse
	if err := json.Unmarshal([]byte(val), &record); err != nil || record.Status == 0 {
		record = storedResponse{Status: http.StatusOK, Body: val}
	}
	c.Header("X-Idempotency-Hit", "true")
	c.Data(record.Status, "application/json; charset=utf-8", []byte(record.Body))
	c.Abort()
}
