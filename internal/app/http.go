package app

import (
	"context"
	"net/http"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/handler"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/provider"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/provider/google"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/provider/kakao"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/provider/naver"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/token"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/config"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/member"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/middleware"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	members := member.NewPostgresRepository(infra.DB)

	tokenService, err := token.NewService(
		cfg.JWTSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	if err != nil {
		return nil, nil, err
	}

	refreshStore := token.NewRedisRefreshStore(infra.Redis.Client)

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	kakaoProvider, err := kakao.New(
		cfg.KakaoClientID,
		cfg.KakaoClientSecret,
		cfg.KakaoRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	naverProvider, err := naver.New(
		cfg.NaverClientID,
		cfg.NaverClientSecret,
		cfg.NaverRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(
		googleProvider,
		kakaoProvider,
		naverProvider,
	)

	authHandler := handler.NewHandler(
		registry,
		members,
		tokenService,
		refreshStore,
		handler.Config{
			SuccessRedirectURL: cfg.OAuthSuccessRedirectURL,
			FailureRedirectURL: cfg.OAuthFailureRedirectURL,
		},
	)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecureHeaders())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// ----------------------------
	// Public Routes
	// ----------------------------
	// The login endpoints, probes, uploads and the pre-auth member
	// surface need no credential; every other route requires a bearer
	// token. Form login does not exist.

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "wedit-backend"})
	})

	router.Static("/uploads", cfg.UploadsDir)

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/v1/profile/me", func(c *gin.Context) {
		memberID, _ := middleware.MemberIDFromContext(c.Request.Context())

		m, err := members.FindByID(c.Request.Context(), memberID)
		if err != nil {
			middleware.Forbidden(c.Writer, "member not provisioned")
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"memberId":        m.ID,
			"email":           m.Email,
			"profileComplete": m.ProfileComplete(),
		})
	})

	// Routes beyond onboarding additionally require a complete profile.
	onboarded := api.Group("/v1/reservations")
	onboarded.Use(middleware.GinRequireCompleteProfile(members))

	onboarded.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reservations": []any{}})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
