package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	KakaoClientID     string
	KakaoClientSecret string
	KakaoRedirectURL  string

	NaverClientID     string
	NaverClientSecret string
	NaverRedirectURL  string

	// Front-end destinations for the OAuth callback outcome.
	OAuthSuccessRedirectURL string
	OAuthFailureRedirectURL string

	CORSAllowedOrigins []string

	UploadsDir string
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  getduration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL: getduration("REFRESH_TOKEN_TTL", 14*24*time.Hour),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		KakaoClientID:     os.Getenv("KAKAO_CLIENT_ID"),
		KakaoClientSecret: os.Getenv("KAKAO_CLIENT_SECRET"),
		KakaoRedirectURL:  os.Getenv("KAKAO_REDIRECT_URL"),

		NaverClientID:     os.Getenv("NAVER_CLIENT_ID"),
		NaverClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
		NaverRedirectURL:  os.Getenv("NAVER_REDIRECT_URL"),

		OAuthSuccessRedirectURL: getenv(
			"OAUTH_SUCCESS_REDIRECT_URL",
			"https://wedit.me/oauth/callback",
		),
		OAuthFailureRedirectURL: getenv(
			"OAUTH_FAILURE_REDIRECT_URL",
			"https://wedit.me/oauth/error",
		),

		CORSAllowedOrigins: getlist(
			"CORS_ALLOWED_ORIGINS",
			[]string{"https://*.wedit.me", "http://localhost:3000"},
		),

		UploadsDir: getenv("UPLOADS_DIR", "./uploads"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getlist(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
