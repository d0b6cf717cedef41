package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/logger"

	"golang.org/x/oauth2"
)

const userInfoURL = "https://kapi.kakao.com/v2/user/me"

// Kakao does not publish OIDC discovery for plain OAuth apps, so the
// endpoints are static and identity comes from the userinfo API.
var endpoint = oauth2.Endpoint{
	AuthURL:  "https://kauth.kakao.com/oauth/authorize",
	TokenURL: "https://kauth.kakao.com/oauth/token",
}

type Provider struct {
	oauthConfig *oauth2.Config
}

func New(
	clientID string,
	clientSecret string,
	redirectURL string,
) (*Provider, error) {

	if clientID == "" || redirectURL == "" {
		return nil, errors.New("kakao oauth config missing required fields")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     endpoint,
		Scopes: []string{
			"account_email",
			"profile_nickname",
		},
	}

	return &Provider{oauthConfig: oauthCfg}, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() auth.Provider {
	return auth.ProviderKakao
}

// AuthCodeURL builds the OAuth authorization URL with PKCE parameters.
func (p *Provider) AuthCodeURL(state string, codeChallenge string) string {
	return p.oauthConfig.AuthCodeURL(
		state,
		oauth2.AccessTypeOnline,
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

func (p *Provider) ExchangeCode(
	ctx context.Context,
	code string,
	codeVerifier string,
) (*auth.Identity, error) {

	token, err := p.oauthConfig.Exchange(
		ctx,
		code,
		oauth2.SetAuthURLParam("code_verifier", codeVerifier),
	)
	if err != nil {
		return nil, fmt.Errorf("kakao token exchange failed: %w", err)
	}

	raw, err := fetchUserInfo(ctx, p.oauthConfig.Client(ctx, token))
	if err != nil {
		return nil, err
	}

	identity, err := auth.NormalizeAttributes(auth.ProviderKakao, "id", raw)
	if err != nil {
		return nil, fmt.Errorf("kakao userinfo missing required fields: %w", err)
	}

	logger.Info("kakao identity normalized", map[string]any{
		"subject_present": identity.ProviderUserID != "",
		"email_present":   identity.Email != "",
	})

	return &identity, nil
}

func fetchUserInfo(ctx context.Context, client *http.Client) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao userinfo returned status %d", resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("kakao userinfo decode failed: %w", err)
	}

	return raw, nil
}
