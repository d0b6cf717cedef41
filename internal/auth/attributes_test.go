package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	t.Parallel()

	t.Run("accepts every known provider", func(t *testing.T) {
		for _, p := range Providers() {
			got, ok := ParseProvider(p.String())
			require.True(t, ok)
			require.Equal(t, p, got)
		}
	})

	t.Run("rejects unknown identifiers", func(t *testing.T) {
		_, ok := ParseProvider("facebook")
		require.False(t, ok)

		_, ok = ParseProvider("")
		require.False(t, ok)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, ok := ParseProvider("Google")
		require.False(t, ok)
	})
}

func TestOauthID(t *testing.T) {
	t.Parallel()

	id := Identity{Provider: ProviderGoogle, ProviderUserID: "12345"}
	require.Equal(t, "google_12345", id.OauthID())

	id = Identity{Provider: ProviderKakao, ProviderUserID: "999"}
	require.Equal(t, "kakao_999", id.OauthID())
}

func TestNormalizeAttributes(t *testing.T) {
	t.Parallel()

	t.Run("google flat claims", func(t *testing.T) {
		identity, err := NormalizeAttributes(ProviderGoogle, "sub", map[string]any{
			"sub":   "12345",
			"email": "a@b.com",
		})
		require.NoError(t, err)
		require.Equal(t, ProviderGoogle, identity.Provider)
		require.Equal(t, "12345", identity.ProviderUserID)
		require.Equal(t, "a@b.com", identity.Email)
	})

	t.Run("google defaults name attribute to sub", func(t *testing.T) {
		identity, err := NormalizeAttributes(ProviderGoogle, "", map[string]any{
			"sub": "12345",
		})
		require.NoError(t, err)
		require.Equal(t, "12345", identity.ProviderUserID)
	})

	t.Run("google missing subject fails", func(t *testing.T) {
		_, err := NormalizeAttributes(ProviderGoogle, "sub", map[string]any{
			"email": "a@b.com",
		})
		require.ErrorIs(t, err, ErrMissingUserID)
	})

	t.Run("kakao numeric id and nested account", func(t *testing.T) {
		identity, err := NormalizeAttributes(ProviderKakao, "id", map[string]any{
			"id": float64(999),
			"kakao_account": map[string]any{
				"email": "k@b.com",
			},
		})
		require.NoError(t, err)
		require.Equal(t, ProviderKakao, identity.Provider)
		require.Equal(t, "999", identity.ProviderUserID)
		require.Equal(t, "k@b.com", identity.Email)
		require.Equal(t, "kakao_999", identity.OauthID())
	})

	t.Run("kakao without account block still yields identity", func(t *testing.T) {
		identity, err := NormalizeAttributes(ProviderKakao, "id", map[string]any{
			"id": float64(999),
		})
		require.NoError(t, err)
		require.Equal(t, "999", identity.ProviderUserID)
		require.Empty(t, identity.Email)
	})

	t.Run("naver nested response", func(t *testing.T) {
		identity, err := NormalizeAttributes(ProviderNaver, "id", map[string]any{
			"resultcode": "00",
			"response": map[string]any{
				"id":    "n-abc",
				"email": "n@b.com",
			},
		})
		require.NoError(t, err)
		require.Equal(t, ProviderNaver, identity.Provider)
		require.Equal(t, "n-abc", identity.ProviderUserID)
		require.Equal(t, "n@b.com", identity.Email)
	})

	t.Run("naver missing response block fails", func(t *testing.T) {
		_, err := NormalizeAttributes(ProviderNaver, "id", map[string]any{
			"resultcode": "00",
		})
		require.ErrorIs(t, err, ErrMissingUserID)
	})

	t.Run("unsupported provider fails", func(t *testing.T) {
		_, err := NormalizeAttributes(Provider("facebook"), "id", map[string]any{})
		require.Error(t, err)
	})
}
