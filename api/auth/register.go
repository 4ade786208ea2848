package auth

import (
	"errors"
	"net/http"
	"talktag_server/lib"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your registration information and try again"), gecho.Send())
		return
	}

	user, err := ar.authService.Register(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w, gecho.WithMessage("An account with this email or username already exists"), gecho.Send())
			return
		}
		ar.logger.Error("Registration failed", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete registration. Please try again"), gecho.Send())
		return
	}

	// Welcome email is best effort, never blocks the response
	go func() {
		if err := ar.emailService.SendWelcomeEmail(user); err != nil {
			ar.logger.Error("Failed to send welcome email", gecho.Field("error", err), gecho.Field("userID", user.Id))
		}
	}()

	gecho.Success(w,
		gecho.WithMessage("Registration successful"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
