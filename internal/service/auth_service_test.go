package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/model"
)

func newAuthService() *AuthService {
	cfg := &config.Config{
		JWTSecret:  "unit-test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	return NewAuthService(cfg, nil)
}

func TestPasswordHashing(t *testing.T) {
	svc := newAuthService()

	hash, err := svc.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password stored in the clear")
	}

	if err := svc.CheckPassword(hash, "secret123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := svc.CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func signTestToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestValidateToken(t *testing.T) {
	svc := newAuthService()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role:    model.RoleStudent,
		UserID:  "u1",
		ClassID: "C1",
	}

	t.Run("RoundTrip", func(t *testing.T) {
		signed := signTestToken(t, "unit-test-secret", claims)
		got, err := svc.ValidateToken(signed)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if got.UserID != "u1" || got.Role != model.RoleStudent || got.ClassID != "C1" {
			t.Errorf("claims = %+v", got)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		signed := signTestToken(t, "some-other-secret", claims)
		if _, err := svc.ValidateToken(signed); err == nil {
			t.Error("token signed with wrong secret accepted")
		}
	})

	t.Run("Expired", func(t *testing.T) {
		expired := claims
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		signed := signTestToken(t, "unit-test-secret", expired)
		if _, err := svc.ValidateToken(signed); err == nil {
			t.Error("expired token accepted")
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := svc.ValidateToken("not-a-token"); err == nil {
			t.Error("garbage accepted")
		}
	})
}
