package auth

import (
	"net/http"
	"talktag_server/lib"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, ar.authService.GetAccessTokenSecret())
	if err == nil {
		if err := ar.authService.Logout(claims); err != nil {
			ar.logger.Warn("Failed to blacklist token on logout", gecho.Field("error", err))
		}
		if ar.cacheService != nil {
			if err := ar.cacheService.DeleteUserFromCache(claims.Sub); err != nil {
				ar.logger.Warn("Failed to evict user from cache", gecho.Field("error", err))
			}
		}
	}

	// Always clear the cookie, even with an invalid or expired token
	lib.ClearCookie(lib.AccessCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out"),
		gecho.Send(),
	)
}
