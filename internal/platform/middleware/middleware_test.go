// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookmanager/internal/platform/constants"
	"github.com/taibuivan/bookmanager/internal/platform/ctxutil"
	"github.com/taibuivan/bookmanager/pkg/uuid"
)

type devConfig bool

func (d devConfig) IsDevelopment() bool { return bool(d) }

/*
TestRequestID verifies that client ids are kept and missing ids generated.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	t.Run("client_supplied", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXRequestID, "abc-123")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", recorder.Header().Get(constants.HeaderXRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXRequestID, strings.Repeat("x", 100))

		handler.ServeHTTP(httptest.NewRecorder(), request)

		assert.True(t, uuid.Valid(seen))
	})
}

/*
TestStructuredLogger verifies that a request logger is available downstream.
*/
func TestStructuredLogger(t *testing.T) {
	logger := ctxutil.GetLogger(t.Context())
	var hasLogger bool

	handler := StructuredLogger(logger)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hasLogger = ctxutil.GetLogger(request.Context()) != logger
		writer.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/books/", nil))

	assert.True(t, hasLogger)
	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

/*
TestPanicRecovery verifies that a panicking handler yields a 500 envelope.
*/
func TestPanicRecovery(t *testing.T) {
	handler := PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

/*
TestRateLimiter verifies burst exhaustion and per-IP isolation.
*/
func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	handler := limiter.Middleware()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))

	call := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXRealIP, ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}

/*
TestRateLimiter_Evict verifies that idle clients are dropped.
*/
func TestRateLimiter_Evict(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(5 * time.Minute)
	limiter.Allow("10.0.0.2")

	limiter.evict(constants.RateLimitClientTTL)

	assert.NotContains(t, limiter.clients, "10.0.0.1")
	assert.Contains(t, limiter.clients, "10.0.0.2")
}

/*
TestCORS verifies origin filtering and pre-flight handling.
*/
func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {})

	tests := []struct {
		name    string
		dev     bool
		origin  string
		allowed bool
	}{
		{"listed_origin", false, "https://books.example.com", true},
		{"unlisted_origin", false, "https://evil.example.com", false},
		{"development_any", true, "http://localhost:3000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(devConfig(tt.dev), []string{"https://books.example.com"})(next)
			request := httptest.NewRequest(http.MethodGet, "/api/v1/books/list", nil)
			request.Header.Set(constants.HeaderOrigin, tt.origin)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	t.Run("preflight", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodOptions, "/api/v1/books/list", nil)
		request.Header.Set(constants.HeaderOrigin, "https://books.example.com")
		recorder := httptest.NewRecorder()

		CORS(devConfig(false), []string{"https://books.example.com"})(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

/*
TestSession verifies that a session cookie is issued once and then reused.
*/
func TestSession(t *testing.T) {
	var seen string
	handler := Session(false)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetSessionID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/books/", nil))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.SessionCookieName, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, seen)

	request := httptest.NewRequest(http.MethodGet, "/books/", nil)
	request.AddCookie(cookies[0])
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, cookies[0].Value, seen)
	assert.Empty(t, recorder.Result().Cookies())

	request = httptest.NewRequest(http.MethodGet, "/books/", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "forged"})
	handler.ServeHTTP(httptest.NewRecorder(), request)

	assert.NotEqual(t, "forged", seen)
}

/*
TestRealIP verifies header precedence.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", RealIP(request))

	request.Header.Set(constants.HeaderXForwardedFor, "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", RealIP(request))

	request.Header.Set(constants.HeaderXRealIP, "198.51.100.7")
	assert.Equal(t, "198.51.100.7", RealIP(request))
}
