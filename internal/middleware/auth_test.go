package middleware_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jaekwang-park/auth-api/internal/middleware"
)

func signedToken(t *testing.T, privKey *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(privKey)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func jwksServer(t *testing.T, kid string, privKey *rsa.PrivateKey) *httptest.Server {
	t.Helper()
	jwks := map[string]any{
		"keys": []map[string]any{
			{
				"kty": "RSA",
				"kid": kid,
				"use": "sig",
				"alg": "RS256",
				"n":   base64.RawURLEncoding.EncodeToString(privKey.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(privKey.E)).Bytes()),
			},
		},
	}
	data, _ := json.Marshal(jwks)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

type stubResolver struct {
	userID string
	err    error
}

func (s *stubResolver) ResolveUserID(ctx context.Context, cognitoSub string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.userID, nil
}

func newJWTAuth(t *testing.T, jwksURL, issuer, clientID string, resolver middleware.UserResolver) *middleware.Auth {
	t.Helper()
	auth, err := middleware.NewAuth(middleware.AuthConfig{
		JWKSClient:   middleware.NewJWKSClient(jwksURL),
		Issuer:       issuer,
		AppClientID:  clientID,
		UserResolver: resolver,
	})
	if err != nil {
		t.Fatalf("failed to create auth middleware: %v", err)
	}
	return auth
}

func TestNewAuth_RequiresDeps(t *testing.T) {
	if _, err := middleware.NewAuth(middleware.AuthConfig{}); err == nil {
		t.Error("expected error when JWT mode lacks resolver and JWKS client")
	}
	if _, err := middleware.NewAuth(middleware.AuthConfig{DevMode: true}); err != nil {
		t.Errorf("dev mode should not require deps, got %v", err)
	}
}

func TestAuth_DevMode(t *testing.T) {
	auth, err := middleware.NewAuth(middleware.AuthConfig{DevMode: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var capturedUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserID = middleware.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		userIDHdr  string
		wantStatus int
		wantUserID string
	}{
		{"with X-User-ID", "dev-user-1", http.StatusOK, "dev-user-1"},
		{"without X-User-ID", "", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capturedUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.userIDHdr != "" {
				req.Header.Set("X-User-ID", tt.userIDHdr)
			}
			w := httptest.NewRecorder()

			auth.Middleware(inner).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus == http.StatusOK && capturedUserID != tt.wantUserID {
				t.Errorf("expected userID=%q, got %q", tt.wantUserID, capturedUserID)
			}
		})
	}
}

func TestAuth_SkipsPublicPaths(t *testing.T) {
	// Even strict JWT mode must let health checks and login through.
	auth := newJWTAuth(t, "http://jwks.invalid", "issuer", "client", &stubResolver{userID: "u1"})

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/health", "/api/v1/auth/login", "/api/v1/auth/signup"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			auth.Middleware(inner).ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected 200 for %s without token, got %d", path, w.Code)
			}
		})
	}
}

func TestAuth_JWT_ValidToken(t *testing.T) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	srv := jwksServer(t, "kid-1", privKey)

	auth := newJWTAuth(t, srv.URL, "test-issuer", "client-1", &stubResolver{userID: "user-db-1"})

	tokenStr := signedToken(t, privKey, "kid-1", jwt.MapClaims{
		"sub": "sub-1",
		"iss": "test-issuer",
		"aud": "client-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	var capturedUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserID = middleware.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	w := httptest.NewRecorder()

	auth.Middleware(inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", w.Code, w.Body.String())
	}
	if capturedUserID != "user-db-1" {
		t.Errorf("expected userID=user-db-1, got %q", capturedUserID)
	}
}

func TestAuth_JWT_Rejections(t *testing.T) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	srv := jwksServer(t, "kid-1", privKey)

	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": "sub-1",
			"iss": "test-issuer",
			"aud": "client-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}

	tests := []struct {
		name     string
		header   func(t *testing.T) string
		resolver middleware.UserResolver
		want     int
	}{
		{
			name:     "missing header",
			header:   func(t *testing.T) string { return "" },
			resolver: &stubResolver{userID: "u1"},
			want:     http.StatusUnauthorized,
		},
		{
			name:     "not a bearer token",
			header:   func(t *testing.T) string { return "Basic abc123" },
			resolver: &stubResolver{userID: "u1"},
			want:     http.StatusUnauthorized,
		},
		{
			name: "expired token",
			header: func(t *testing.T) string {
				claims := validClaims()
				claims["exp"] = time.Now().Add(-time.Hour).Unix()
				return "Bearer " + signedToken(t, privKey, "kid-1", claims)
			},
			resolver: &stubResolver{userID: "u1"},
			want:     http.StatusUnauthorized,
		},
		{
			name: "wrong audience",
			header: func(t *testing.T) string {
				claims := validClaims()
				claims["aud"] = "other-client"
				return "Bearer " + signedToken(t, privKey, "kid-1", claims)
			},
			resolver: &stubResolver{userID: "u1"},
			want:     http.StatusUnauthorized,
		},
		{
			name: "unknown user",
			header: func(t *testing.T) string {
				return "Bearer " + signedToken(t, privKey, "kid-1", validClaims())
			},
			resolver: &stubResolver{err: middleware.ErrUserNotFound},
			want:     http.StatusUnauthorized,
		},
		{
			name: "resolver failure",
			header: func(t *testing.T) string {
				return "Bearer " + signedToken(t, privKey, "kid-1", validClaims())
			},
			resolver: &stubResolver{err: fmt.Errorf("db down")},
			want:     http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := newJWTAuth(t, srv.URL, "test-issuer", "client-1", tt.resolver)

			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()

			auth.Middleware(inner).ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d (body: %s)", tt.want, w.Code, w.Body.String())
			}
		})
	}
}
