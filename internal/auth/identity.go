package auth

// Identity represents a normalized external authentication identity
// returned by an OAuth provider. It contains facts only, no decisions.
type Identity struct {
	Provider       Provider // e.g. "google", "kakao", "naver"
	ProviderUserID string   // provider-scoped unique user identifier
	Email          string   // email returned by provider
}

// OauthID returns the canonical federated key used to join this
// identity to a local member. Exact, case-sensitive, no trimming.
func (i Identity) OauthID() string {
	return string(i.Provider) + "_" + i.ProviderUserID
}
