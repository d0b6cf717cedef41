package middleware

import (
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/member"

	"github.com/gin-gonic/gin"
)

// GinRequireCompleteProfile gates routes that only onboarded members may
// use. The caller is already authenticated; an incomplete profile is an
// authorization failure, rendered distinctly from the 401 path.
func GinRequireCompleteProfile(members member.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := MemberIDFromContext(c.Request.Context())
		if !ok {
			Unauthenticated(c.Writer, "")
			c.Abort()
			return
		}

		m, err := members.FindByID(c.Request.Context(), memberID)
		if err != nil {
			Forbidden(c.Writer, "member not provisioned")
			c.Abort()
			return
		}

		if !m.ProfileComplete() {
			Forbidden(c.Writer, "onboarding not completed")
			c.Abort()
			return
		}

		c.Next()
	}
}
