package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackpotai/web/internal/cache"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{"generated when missing", "", false},
		{"reused when well formed", "abc-123_x.y", true},
		{"replaced when too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"replaced when unsafe", "id\nforged=1", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if seen == "" {
				t.Fatal("request id missing from context")
			}
			if got := rec.Header().Get(RequestIDHeader); got != seen {
				t.Errorf("response header = %q, context = %q", got, seen)
			}
			if (seen == tt.incoming) != tt.wantSame {
				t.Errorf("request id = %q, incoming %q", seen, tt.incoming)
			}
		})
	}
}

func TestGetRequestID_Empty(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("template exploded")
	})

	t.Run("plain 500 without fallback", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		Recoverer(logger, nil)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		if !strings.Contains(buf.String(), "template exploded") {
			t.Error("panic value not logged")
		}
	})

	t.Run("fallback handler", func(t *testing.T) {
		fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<h1>Something went wrong</h1>"))
		})
		rec := httptest.NewRecorder()
		Recoverer(logger, fallback)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if !strings.Contains(rec.Body.String(), "Something went wrong") {
			t.Errorf("body = %q", rec.Body.String())
		}
	})
}

type fakeLimiter struct {
	result *cache.RateLimitResult
	err    error
	gotIP  string
}

func (f *fakeLimiter) CheckIPRateLimit(_ context.Context, ip string, _, _ int) (*cache.RateLimitResult, error) {
	f.gotIP = ip
	return f.result, f.err
}

func TestRateLimitIP(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})

	tests := []struct {
		name        string
		limiter     *fakeLimiter
		wantStatus  int
		wantLimited bool
	}{
		{
			name:       "allowed",
			limiter:    &fakeLimiter{result: &cache.RateLimitResult{Allowed: true, Remaining: 4, ResetAt: time.Now()}},
			wantStatus: http.StatusFound,
		},
		{
			name:        "rejected",
			limiter:     &fakeLimiter{result: &cache.RateLimitResult{Allowed: false, RetryAfter: 2 * time.Second}},
			wantStatus:  http.StatusTooManyRequests,
			wantLimited: true,
		},
		{
			name:       "limiter error fails open",
			limiter:    &fakeLimiter{err: errors.New("redis down")},
			wantStatus: http.StatusFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			limited := false
			mw := RateLimitIP(RateLimitConfig{
				Logger:    discardLogger(),
				Limiter:   tt.limiter,
				RPS:       5,
				Burst:     5,
				OnLimited: func(*http.Request) { limited = true },
			})

			req := httptest.NewRequest(http.MethodGet, "/download", nil)
			req.RemoteAddr = "203.0.113.7:51234"
			rec := httptest.NewRecorder()
			mw(ok).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if limited != tt.wantLimited {
				t.Errorf("OnLimited called = %v, want %v", limited, tt.wantLimited)
			}
			if tt.limiter.gotIP != "203.0.113.7" {
				t.Errorf("limiter saw ip %q", tt.limiter.gotIP)
			}
			if tt.wantLimited && rec.Header().Get("Retry-After") != "2" {
				t.Errorf("Retry-After = %q, want 2", rec.Header().Get("Retry-After"))
			}
		})
	}
}

func TestRateLimitIP_DisabledWithoutLimiter(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	mw := RateLimitIP(RateLimitConfig{Logger: discardLogger(), RPS: 5, Burst: 5})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download", nil))
	if rec.Header().Get("X-RateLimit-Limit") != "" {
		t.Error("rate limit headers set without a limiter")
	}
}

func TestWriteRateLimitError_MinimumRetry(t *testing.T) {
	rec := httptest.NewRecorder()
	writeRateLimitError(rec, 100*time.Millisecond)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "1" {
		t.Errorf("Retry-After = %q, want 1", rec.Header().Get("Retry-After"))
	}
}
