package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/token"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/member"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	members map[string]*member.Member
}

func (f *fakeRepository) FindByOauthID(_ context.Context, oauthID string) (*member.Member, error) {
	for _, m := range f.members {
		if m.OauthID == oauthID {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*member.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	return m, nil
}

func newTokenService(t *testing.T) *token.Service {
	t.Helper()
	svc, err := token.NewService("test-secret", time.Hour, 24*time.Hour)
	require.NoError(t, err)
	return svc
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (status int, code string) {
	t.Helper()
	var body struct {
		Status int    `json:"status"`
		Code   string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Status, body.Code
}

func protectedRouter(tokens *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")
	api.Use(GinRequireAuth(NewAuthMiddleware(tokens)))
	api.GET("/me", func(c *gin.Context) {
		id, _ := MemberIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"member_id": id})
	})

	return r
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	tokens := newTokenService(t)

	t.Run("public route needs no credential", func(t *testing.T) {
		r := protectedRouter(tokens)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing credential is an authentication failure", func(t *testing.T) {
		r := protectedRouter(tokens)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		status, code := decodeError(t, w)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, CodeAuthRequired, code)
	})

	t.Run("malformed header is an authentication failure", func(t *testing.T) {
		r := protectedRouter(tokens)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is an authentication failure", func(t *testing.T) {
		r := protectedRouter(tokens)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		_, code := decodeError(t, w)
		require.Equal(t, CodeAuthRequired, code)
	})

	t.Run("refresh token is not a bearer credential", func(t *testing.T) {
		refresh, err := tokens.CreateRefreshToken("member-1")
		require.NoError(t, err)

		r := protectedRouter(tokens)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token reaches the handler with the member id", func(t *testing.T) {
		m := &member.Member{ID: "member-1", OauthID: "google_12345", Email: "a@b.com"}
		access, err := tokens.CreateAccessToken(m)
		require.NoError(t, err)

		r := protectedRouter(tokens)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "member-1")
	})
}

func TestRequireCompleteProfile(t *testing.T) {
	t.Parallel()

	tokens := newTokenService(t)

	complete := &member.Member{
		ID:          "member-complete",
		OauthID:     "google_1",
		Email:       "done@b.com",
		PhoneNumber: sql.NullString{String: "010-0000-0000", Valid: true},
		BirthDate:   sql.NullTime{Time: time.Now(), Valid: true},
		WeddingDate: sql.NullTime{Time: time.Now(), Valid: true},
		Type:        sql.NullString{String: "BRIDE", Valid: true},
	}
	incomplete := &member.Member{
		ID:      "member-incomplete",
		OauthID: "kakao_2",
		Email:   "new@b.com",
	}

	repo := &fakeRepository{members: map[string]*member.Member{
		complete.ID:   complete,
		incomplete.ID: incomplete,
	}}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(GinRequireAuth(NewAuthMiddleware(tokens)))
	api.Use(GinRequireCompleteProfile(repo))
	api.GET("/reservations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	request := func(m *member.Member) *httptest.ResponseRecorder {
		access, err := tokens.CreateAccessToken(m)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("complete profile passes", func(t *testing.T) {
		w := request(complete)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("incomplete profile is an authorization failure", func(t *testing.T) {
		w := request(incomplete)
		require.Equal(t, http.StatusForbidden, w.Code)
		status, code := decodeError(t, w)
		require.Equal(t, http.StatusForbidden, status)
		require.Equal(t, CodeAccessDenied, code)
	})
}

func TestSecureHeaders(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecureHeaders())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
