package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := SignJWT("secret", TokenClaims{Sub: "admin", Exp: time.Now().Add(time.Hour).Unix(), Issuer: "test"})
	if err != nil {
		t.Fatalf("SignJWT returned error: %v", err)
	}
	claims, err := VerifyJWT("secret", token)
	if err != nil {
		t.Fatalf("VerifyJWT returned error: %v", err)
	}
	if claims.Sub != "admin" || claims.Issuer != "test" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestJWTExpired(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{Sub: "admin", Exp: time.Now().Add(-time.Hour).Unix()})
	if _, err := VerifyJWT("secret", token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{Sub: "admin", Exp: time.Now().Add(time.Hour).Unix()})
	if _, err := VerifyJWT("other", token); err == nil {
		t.Fatal("expected wrong secret to fail")
	}
}

func TestAuthJWTMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := AdminSubjectFromContext(r.Context()); got != "admin" {
			t.Fatalf("subject in context = %q, want %q", got, "admin")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthJWT("secret")(next)

	t.Run("missing header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("bad scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, _ := SignJWT("secret", TokenClaims{Sub: "admin", Exp: time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rr.Code)
		}
	})
}
