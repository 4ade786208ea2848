package auth

import (
	"net/http"
	"talktag_server/api/middleware"

	"github.com/MonkyMars/gecho"
)

// HandleMe returns the authenticated user's profile.
func (ar *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Authentication required"), gecho.Send())
		return
	}

	user, err := ar.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		ar.logger.Error("Failed to load user profile", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
