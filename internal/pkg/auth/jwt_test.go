package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "marksheet-test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := testJWTService()

	token, err := svc.Generate("S001", svc.AccessTokenTTL())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if token == "" {
		t.Fatal("Generate returned empty token")
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if subject != "S001" {
		t.Errorf("subject = %q, want %q", subject, "S001")
	}
}

func TestGenerateEmptySubject(t *testing.T) {
	svc := testJWTService()

	if _, err := svc.Generate("", time.Minute); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestAccessTokenTTLDefault(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret"})

	if got := svc.AccessTokenTTL(); got != defaultTokenTTL {
		t.Errorf("AccessTokenTTL = %v, want %v", got, defaultTokenTTL)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService()

	// Token signed with the right secret but already past its expiry.
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		Subject:   "S001",
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := svc.Validate(expired); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	other := NewJWTService(JWTConfig{SecretKey: "another-secret", AccessTokenExp: time.Minute})
	token, err := other.Generate("S001", time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := testJWTService().Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateMissingSubject(t *testing.T) {
	svc := testJWTService()

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	svc := testJWTService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) err = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer scheme", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bare token without scheme", "abc.def.ghi", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"lowercase scheme", "bearer abc.def.ghi", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
