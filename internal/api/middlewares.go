package api

import (
	"bytes"
	"crypto/rsa"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang-jwt/jwt/v4/request"

	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/pkg/logger"
	"github.com/lljaworski/invoicing/pkg/metrics"
)

var skipLogging = map[string]struct{}{
	"/api/health":  {},
	"/api/metrics": {},
}

type Middleware struct {
	jwtSecret     []byte
	jwtPublicKey  *rsa.PublicKey
	apiKeyEnabled bool
	apiKey        string
}

type MiddlewareOption func(*Middleware)

// WithJWTPublicKey accepts RSA signed tokens verified with key.
func WithJWTPublicKey(key *rsa.PublicKey) MiddlewareOption {
	return func(m *Middleware) {
		m.jwtPublicKey = key
	}
}

// NewMiddleware builds the HTTP middlewares. Bearer authentication is off when
// neither jwtSecret nor a public key is set.
func NewMiddleware(jwtSecret string, apiKeyEnabled bool, apiKey string, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		jwtSecret:     []byte(jwtSecret),
		apiKeyEnabled: apiKeyEnabled,
		apiKey:        apiKey,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			reqBody, err := io.ReadAll(r.Body)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read request body")
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" || k == "X-Api-Key" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), "internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Api-Key, X-Request-Id")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Metrics records request count and latency per route pattern.
func (m *Middleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.statusCode)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// BearerAuth verifies an HMAC or RSA signed JWT. The subject, when it is a UUID,
// is attached to the request logs.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if len(m.jwtSecret) == 0 && m.jwtPublicKey == nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, errors.Join(entity.ErrUnauthenticated, err), "token is missing")
			return
		}

		var claims jwt.RegisteredClaims

		_, err = jwt.ParseWithClaims(token, &claims, m.verificationKey)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, errors.Join(entity.ErrUnauthenticated, err), "invalid token")
			return
		}

		if userID, err := uuid.FromString(claims.Subject); err == nil {
			ctx = logger.WithUserID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIKeyAuth verifies incoming API key.
func (m *Middleware) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !m.apiKeyEnabled {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get("X-Api-Key")
		if apiKey == "" {
			SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated, "API key is missing")
			return
		}

		if apiKey != m.apiKey {
			SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated, "invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) verificationKey(t *jwt.Token) (any, error) {
	switch t.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if len(m.jwtSecret) > 0 {
			return m.jwtSecret, nil
		}
	case *jwt.SigningMethodRSA:
		if m.jwtPublicKey != nil {
			return m.jwtPublicKey, nil
		}
	}

	return nil, fmt.Errorf("unexpected signing method %s", t.Header["alg"])
}
