package auth

// Provider identifies a supported social login provider. The set is
// closed: extending it means adding a constant here plus an attribute
// schema in attributes.go and a variant under internal/auth/provider.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderKakao  Provider = "kakao"
	ProviderNaver  Provider = "naver"
)

// DefaultProvider is the documented fallback when a callback carries
// no usable provider signal.
const DefaultProvider = ProviderGoogle

// Providers lists every supported provider.
func Providers() []Provider {
	return []Provider{ProviderGoogle, ProviderKakao, ProviderNaver}
}

// ParseProvider maps a raw identifier onto the provider set.
func ParseProvider(s string) (Provider, bool) {
	switch Provider(s) {
	case ProviderGoogle, ProviderKakao, ProviderNaver:
		return Provider(s), true
	}
	return "", false
}

func (p Provider) String() string {
	return string(p)
}
