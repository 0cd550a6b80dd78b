package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/handler"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := utils.NewJWTManager("secret", time.Hour)
	userID := uuid.New()
	token, err := jwtManager.GenerateAccessToken(userID, "manager1", "manager")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", AuthMiddleware(jwtManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  handler.GetUserID(c).String(),
			"username": handler.GetUsername(c),
			"role":     handler.GetUserRole(c),
		})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
				assert.Contains(t, w.Body.String(), `"username":"manager1"`)
				assert.Contains(t, w.Body.String(), `"role":"manager"`)
			}
		})
	}
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role != "" {
			c.Set(handler.ContextRole, role)
		}
		c.Next()
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		role   string
		status int
	}{
		{"admin", http.StatusOK},
		{"Manager", http.StatusOK},
		{"cashier", http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tt := range tests {
		r := gin.New()
		r.GET("/x", withRole(tt.role), RequireRole("admin", "manager"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, tt.status, w.Code, "role %q", tt.role)
	}
}

func TestUserRateLimiter(t *testing.T) {
	rl := NewUserRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         2,
		CleanupInterval:   time.Hour,
		EntryTTL:          time.Hour,
	})
	defer rl.Close()

	alice, bob := uuid.New(), uuid.New()
	var current uuid.UUID
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handler.ContextUserID, current)
		c.Next()
	}, rl.Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(id uuid.UUID) *httptest.ResponseRecorder {
		current = id
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, hit(alice).Code)
	assert.Equal(t, http.StatusOK, hit(alice).Code)
	w := hit(alice)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))

	// Another user has their own bucket.
	assert.Equal(t, http.StatusOK, hit(bob).Code)
}

func TestNewRateLimiterConfig(t *testing.T) {
	cfg := NewRateLimiterConfig(120, time.Minute)
	assert.InDelta(t, 2.0, cfg.RequestsPerSecond, 1e-9)
	assert.Equal(t, 120, cfg.BurstSize)

	def := NewRateLimiterConfig(0, 0)
	assert.Equal(t, 100, def.BurstSize)
}

type memIdempotencyRepo struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

func newMemIdempotencyRepo() *memIdempotencyRepo {
	return &memIdempotencyRepo{keys: map[string]*entity.IdempotencyKey{}}
}

func (m *memIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keys[userID.String()+key], nil
}

func (m *memIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[ikey.UserID.String()+ikey.Key] = ikey
	return nil
}

func (m *memIdempotencyRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, v := range m.keys {
		if v.IsExpired(now) {
			delete(m.keys, k)
			n++
		}
	}
	return n, nil
}

func idempotencyRouter(repo *memIdempotencyRepo, now func() time.Time, status *int, calls *int) *gin.Engine {
	userID := uuid.New()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handler.ContextUserID, userID)
		c.Next()
	})
	r.POST("/void", Idempotency(IdempotencyConfig{Repo: repo, Now: now}), func(c *gin.Context) {
		*calls++
		c.JSON(*status, gin.H{"call": *calls})
	})
	return r
}

func postVoid(r *gin.Engine, key, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/void", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysSuccess(t *testing.T) {
	repo := newMemIdempotencyRepo()
	status, calls := http.StatusOK, 0
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	r := idempotencyRouter(repo, func() time.Time { return now }, &status, &calls)

	first := postVoid(r, "k1", `{"invoice_code":"INV-1"}`)
	second := postVoid(r, "k1", `{"invoice_code":"INV-1"}`)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))

	stored := repo.keys
	require.Len(t, stored, 1)
	for _, v := range stored {
		assert.Equal(t, "POST /void", v.Endpoint)
		assert.Len(t, v.RequestHash, 64)
		assert.Equal(t, now.Add(IdempotencyKeyTTL), v.ExpiresAt)
	}
}

func TestIdempotencyDifferentBodyRejected(t *testing.T) {
	repo := newMemIdempotencyRepo()
	status, calls := http.StatusOK, 0
	r := idempotencyRouter(repo, nil, &status, &calls)

	postVoid(r, "k1", `{"invoice_code":"INV-1"}`)
	w := postVoid(r, "k1", `{"invoice_code":"INV-2"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotencyFailuresNotStored(t *testing.T) {
	repo := newMemIdempotencyRepo()
	status, calls := http.StatusConflict, 0
	r := idempotencyRouter(repo, nil, &status, &calls)

	postVoid(r, "k1", `{}`)
	status = http.StatusOK
	w := postVoid(r, "k1", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotencyExpiredKeyRunsAgain(t *testing.T) {
	repo := newMemIdempotencyRepo()
	status, calls := http.StatusOK, 0
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	r := idempotencyRouter(repo, func() time.Time { return now }, &status, &calls)

	postVoid(r, "k1", `{}`)
	now = now.Add(IdempotencyKeyTTL + time.Minute)
	postVoid(r, "k1", `{}`)

	assert.Equal(t, 2, calls)
}

func TestIdempotencyWithoutKey(t *testing.T) {
	repo := newMemIdempotencyRepo()
	status, calls := http.StatusOK, 0
	r := idempotencyRouter(repo, nil, &status, &calls)

	postVoid(r, "", `{}`)
	postVoid(r, "", `{}`)

	assert.Equal(t, 2, calls)
	assert.Empty(t, repo.keys)
}

func TestLoggerMiddlewareRequestID(t *testing.T) {
	r := gin.New()
	r.Use(LoggerMiddleware())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}
