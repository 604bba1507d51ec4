package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mustSign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	return s
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty token", "", true},
		{"expired", mustSign(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), true},
		{"live", mustSign(t, jwt.MapClaims{"exp": now.Add(time.Minute).Unix()}), false},
		{"no exp claim", mustSign(t, jwt.MapClaims{"sub": "u"}), false},
		{"garbage", "not-a-jwt", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tokenExpired(tc.token, now); got != tc.want {
				t.Errorf("tokenExpired = %v, want %v", got, tc.want)
			}
		})
	}
}
