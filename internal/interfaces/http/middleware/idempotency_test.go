package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"hackathon-catalog.backend/internal/interfaces/http/response"
	redispkg "hackathon-catalog.backend/pkg/redis"
)

func startMiniRedis(t *testing.T) (*miniredis.Miniredis, *redispkg.Store) {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = cli.Close() })
	return srv, redispkg.NewStore(cli)
}

func newIdempotentRouter(store IdempotencyStore, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyMiddleware(store, time.Hour))
	r.POST("/x", h)
	return r
}

func post(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	_, store := startMiniRedis(t)
	r := newIdempotentRouter(store, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	require.Equal(t, http.StatusNoContent, post(r, "").Code)
}

func TestIdempotencyMiddleware_NilStorePassthrough(t *testing.T) {
	calls := 0
	r := newIdempotentRouter(nil, func(c *gin.Context) {
		calls++
		c.Status(http.StatusAccepted)
	})
	require.Equal(t, http.StatusAccepted, post(r, "k").Code)
	require.Equal(t, http.StatusAccepted, post(r, "k").Code)
	require.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_RedisErrorPassthrough(t *testing.T) {
	store := redispkg.NewStore(redisv9.NewClient(&redisv9.Options{Addr: "127.0.0.1:0", DialTimeout: 50 * time.Millisecond}))
	r := newIdempotentRouter(store, func(c *gin.Context) { c.Status(http.StatusAccepted) })
	require.Equal(t, http.StatusAccepted, post(r, "idem-key").Code)
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	srv, store := startMiniRedis(t)
	require.NoError(t, srv.Set("idempotency:POST:/x:key-1", processingMarker))

	r := newIdempotentRouter(store, func(c *gin.Context) { c.Status(http.StatusCreated) })
	w := post(r, "key-1")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "in progress")
}

func TestIdempotencyMiddleware_StoresAndReplaysSuccess(t *testing.T) {
	_, store := startMiniRedis(t)
	calls := 0
	r := newIdempotentRouter(store, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"success": true, "id": 1})
	})

	w := post(r, "key-3")
	require.Equal(t, http.StatusOK, w.Code)

	w2 := post(r, "key-3")
	require.Equal(t, http.StatusOK, w2.Code)
	require.Equal(t, "true", w2.Header().Get("X-Idempotency-Hit"))
	require.JSONEq(t, `{"success":true,"id":1}`, w2.Body.String())
	require.Equal(t, 1, calls)
}

func TestIdempotencyMiddleware_LegacyRawValueReplays(t *testing.T) {
	srv, store := startMiniRedis(t)
	require.NoError(t, srv.Set("idempotency:POST:/x:key-2", `{"ok":true}`))

	r := newIdempotentRouter(store, func(c *gin.Context) { c.Status(http.StatusCreated) })
	w := post(r, "key-2")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"ok":true}`, w.Body.String())
}

func TestIdempotencyMiddleware_DeletesKeyOnFailure(t *testing.T) {
	_, store := startMiniRedis(t)
	r := newIdempotentRouter(store, func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})
	require.Equal(t, http.StatusInternalServerError, post(r, "key-4").Code)

	_, err := store.Get(context.Background(), "idempotency:POST:/x:key-4")
	require.ErrorIs(t, err, redispkg.ErrMiss)
}

func TestIdempotencyMiddleware_DoesNotStoreUnpersistedMutation(t *testing.T) {
	_, store := startMiniRedis(t)
	calls := 0
	r := newIdempotentRouter(store, func(c *gin.Context) {
		calls++
		c.Set(response.SkipReplayKey, true)
		c.JSON(http.StatusOK, gin.H{"success": false})
	})

	post(r, "key-5")
	post(r, "key-5")
	require.Equal(t, 2, calls)
}
