package jwt

import (
	"encoding/json"
	"time"
)

// reservedClaimKeys are the registered claim names owned by the Claims
// struct fields. Entries under these keys in Custom are dropped on
// marshal so the struct fields stay authoritative.
var reservedClaimKeys = [...]string{"jti", "iss", "sub", "exp", "nbf"}

func isReservedClaim(key string) bool {
	for _, k := range reservedClaimKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Claims carries the registered JWT claims used for sessions plus an
// open-ended set of custom claims. On the wire the custom entries are
// flattened into the same top-level JSON object as the registered ones.
// All temporal claims use Unix timestamps; zero means unset per RFC 7519.
type Claims struct {
	ID        string         // jti - unique identifier of the issued token
	Issuer    string         // iss - identifies who issued the token
	Subject   string         // sub - the authenticated principal
	ExpiresAt int64          // exp - Unix timestamp after which the token is rejected
	NotBefore int64          // nbf - Unix timestamp before which the token is rejected
	Custom    map[string]any // application-defined top-level claims
}

// ValidAt checks the temporal claims against the given time.
// Zero values are treated as unset (per RFC 7519) and are ignored.
// Time-window validation is separate from Service.Verify so that
// signature checks stay independent of the clock.
func (c Claims) ValidAt(t time.Time) error {
	now := t.Unix()

	if c.ExpiresAt > 0 && now > c.ExpiresAt {
		return ErrExpiredToken
	}

	if c.NotBefore > 0 && now < c.NotBefore {
		return ErrTokenNotYetValid
	}

	return nil
}

// MarshalJSON emits the registered claims and the custom claims as a
// single flat JSON object. Map keys are encoded in sorted order, which
// keeps Service.Sign deterministic for a fixed claim set.
func (c Claims) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(c.Custom)+5)
	for k, v := range c.Custom {
		if isReservedClaim(k) {
			continue
		}
		merged[k] = v
	}

	if c.ID != "" {
		merged["jti"] = c.ID
	}
	if c.Issuer != "" {
		merged["iss"] = c.Issuer
	}
	if c.Subject != "" {
		merged["sub"] = c.Subject
	}
	if c.ExpiresAt != 0 {
		merged["exp"] = c.ExpiresAt
	}
	if c.NotBefore != 0 {
		merged["nbf"] = c.NotBefore
	}

	return json.Marshal(merged)
}

// UnmarshalJSON splits a flat claims object back into registered fields
// and custom claims. Custom is left nil when the token carries no
// custom claims.
func (c *Claims) UnmarshalJSON(data []byte) error {
	// The struct pass decodes the registered fields with exact integer
	// semantics for exp/nbf; the map pass collects everything else.
	var registered struct {
		ID        string `json:"jti"`
		Issuer    string `json:"iss"`
		Subject   string `json:"sub"`
		ExpiresAt int64  `json:"exp"`
		NotBefore int64  `json:"nbf"`
	}
	if err := json.Unmarshal(data, &registered); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range reservedClaimKeys {
		delete(all, k)
	}
	if len(all) == 0 {
		all = nil
	}

	*c = Claims{
		ID:        registered.ID,
		Issuer:    registered.Issuer,
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt,
		NotBefore: registered.NotBefore,
		Custom:    all,
	}

	return nil
}
