package jwt_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionkit/sessionkit/pkg/jwt"
)

func TestClaimsMarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("flattens custom claims into the top level", func(t *testing.T) {
		claims := jwt.Claims{
			Subject:   "carl",
			Issuer:    "sessionkit",
			ExpiresAt: 1700000000,
			NotBefore: 1600000000,
			Custom:    map[string]any{"admin": true, "who": "carl"},
		}

		data, err := json.Marshal(claims)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"sub":"carl","iss":"sessionkit","exp":1700000000,"nbf":1600000000,"admin":true,"who":"carl"}`,
			string(data))
	})

	t.Run("registered fields win over reserved custom keys", func(t *testing.T) {
		claims := jwt.Claims{
			Subject: "carl",
			Custom:  map[string]any{"sub": "mallory", "exp": 1, "admin": true},
		}

		data, err := json.Marshal(claims)
		require.NoError(t, err)
		assert.JSONEq(t, `{"sub":"carl","admin":true}`, string(data))
	})

	t.Run("zero claims marshal to an empty object", func(t *testing.T) {
		data, err := json.Marshal(jwt.Claims{})
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("output is byte-for-byte deterministic", func(t *testing.T) {
		claims := jwt.Claims{
			Subject: "carl",
			Custom:  map[string]any{"z": 1, "a": 2, "m": 3},
		}

		first, err := json.Marshal(claims)
		require.NoError(t, err)
		second, err := json.Marshal(claims)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	})
}

func TestClaimsUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("splits registered and custom claims", func(t *testing.T) {
		var claims jwt.Claims
		err := json.Unmarshal(
			[]byte(`{"jti":"id-1","iss":"sessionkit","sub":"carl","exp":1700000000,"nbf":1600000000,"admin":true}`),
			&claims)
		require.NoError(t, err)

		assert.Equal(t, "id-1", claims.ID)
		assert.Equal(t, "sessionkit", claims.Issuer)
		assert.Equal(t, "carl", claims.Subject)
		assert.Equal(t, int64(1700000000), claims.ExpiresAt)
		assert.Equal(t, int64(1600000000), claims.NotBefore)
		assert.Equal(t, map[string]any{"admin": true}, claims.Custom)
	})

	t.Run("custom stays nil without custom claims", func(t *testing.T) {
		var claims jwt.Claims
		err := json.Unmarshal([]byte(`{"sub":"carl","exp":1700000000}`), &claims)
		require.NoError(t, err)

		assert.Equal(t, "carl", claims.Subject)
		assert.Nil(t, claims.Custom)
	})

	t.Run("rejects mistyped registered claims", func(t *testing.T) {
		var claims jwt.Claims
		err := json.Unmarshal([]byte(`{"exp":"tomorrow"}`), &claims)
		require.Error(t, err)
	})

	t.Run("round trips through marshal", func(t *testing.T) {
		original := jwt.Claims{
			ID:        "id-1",
			Issuer:    "sessionkit",
			Subject:   "carl",
			ExpiresAt: 1700000000,
			NotBefore: 1600000000,
			Custom:    map[string]any{"admin": true, "who": "carl", "level": float64(3)},
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var parsed jwt.Claims
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, original, parsed)
	})
}

func TestClaimsValidAt(t *testing.T) {
	t.Parallel()
	now := time.Now()

	t.Run("inside the validity window", func(t *testing.T) {
		claims := jwt.Claims{
			NotBefore: now.Add(-time.Minute).Unix(),
			ExpiresAt: now.Add(time.Hour).Unix(),
		}
		require.NoError(t, claims.ValidAt(now))
	})

	t.Run("expired one second ago", func(t *testing.T) {
		claims := jwt.Claims{ExpiresAt: now.Unix() - 1}
		require.ErrorIs(t, claims.ValidAt(now), jwt.ErrExpiredToken)
	})

	t.Run("valid exactly at expiry", func(t *testing.T) {
		claims := jwt.Claims{ExpiresAt: now.Unix()}
		require.NoError(t, claims.ValidAt(now))
	})

	t.Run("not valid yet", func(t *testing.T) {
		claims := jwt.Claims{NotBefore: now.Add(time.Hour).Unix()}
		require.ErrorIs(t, claims.ValidAt(now), jwt.ErrTokenNotYetValid)
	})

	t.Run("valid exactly at not-before", func(t *testing.T) {
		claims := jwt.Claims{NotBefore: now.Unix()}
		require.NoError(t, claims.ValidAt(now))
	})

	t.Run("zero temporal claims are unset", func(t *testing.T) {
		require.NoError(t, jwt.Claims{Subject: "carl"}.ValidAt(now))
	})
}
