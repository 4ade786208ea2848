package auth

import (
	"context"
	"net/http"
	"talktag_server/lib"
	"talktag_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	user, err := ar.authService.Login(r.Context(), body)
	if err != nil {
		ar.logger.Warn("Login failed", gecho.Field("email", body.Email), gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	accessToken, claims, err := ar.authService.GenerateAccessToken(user)
	if err != nil {
		ar.logger.Warn("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	// remember_me gets a cookie that outlives the browser session; without
	// it the zero expiry makes the cookie vanish on browser close.
	var cookieExpiry time.Time
	if body.RememberMe {
		cookieExpiry = claims.Exp
	}
	lib.SetCookie(lib.AccessCookieName, accessToken, cookieExpiry, w)

	// Send last login to db asynchronously; the request context is gone by
	// the time this runs.
	go func() {
		if err := ar.authService.UpdateLastLogin(context.Background(), user.Id); err != nil {
			ar.logger.Error("Failed to update last login", gecho.Field("error", err), gecho.Field("userID", user.Id))
		}
	}()

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
