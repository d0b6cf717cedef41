package auth

import (
	"errors"
	"fmt"
	"strconv"
)

// Per-provider user payloads differ in shape: google returns flat OIDC
// claims, kakao wraps account data under "kakao_account" with a numeric
// top-level id, naver nests everything under "response". NormalizeAttributes
// is the single place those schemas are known; callers receive identity
// facts and never touch raw payloads.

var ErrMissingUserID = errors.New("provider payload missing user identifier")

// NormalizeAttributes extracts a normalized Identity from a raw provider
// payload. nameAttributeKey is the payload key holding the provider-scoped
// user id for flat schemas; nested schemas ignore it.
func NormalizeAttributes(
	p Provider,
	nameAttributeKey string,
	raw map[string]any,
) (Identity, error) {

	switch p {
	case ProviderGoogle:
		return normalizeGoogle(nameAttributeKey, raw)
	case ProviderKakao:
		return normalizeKakao(raw)
	case ProviderNaver:
		return normalizeNaver(raw)
	}

	return Identity{}, fmt.Errorf("unsupported provider: %s", p)
}

func normalizeGoogle(nameAttributeKey string, raw map[string]any) (Identity, error) {
	if nameAttributeKey == "" {
		nameAttributeKey = "sub"
	}

	id := stringValue(raw[nameAttributeKey])
	if id == "" {
		return Identity{}, ErrMissingUserID
	}

	return Identity{
		Provider:       ProviderGoogle,
		ProviderUserID: id,
		Email:          stringValue(raw["email"]),
	}, nil
}

func normalizeKakao(raw map[string]any) (Identity, error) {
	// Kakao's user id is a top-level number, not a string.
	id := stringValue(raw["id"])
	if id == "" {
		return Identity{}, ErrMissingUserID
	}

	var email string
	if account, ok := raw["kakao_account"].(map[string]any); ok {
		email = stringValue(account["email"])
	}

	return Identity{
		Provider:       ProviderKakao,
		ProviderUserID: id,
		Email:          email,
	}, nil
}

func normalizeNaver(raw map[string]any) (Identity, error) {
	response, ok := raw["response"].(map[string]any)
	if !ok {
		return Identity{}, ErrMissingUserID
	}

	id := stringValue(response["id"])
	if id == "" {
		return Identity{}, ErrMissingUserID
	}

	return Identity{
		Provider:       ProviderNaver,
		ProviderUserID: id,
		Email:          stringValue(response["email"]),
	}, nil
}

// stringValue renders the id/email forms providers actually send:
// strings, and JSON numbers decoded as float64.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}
