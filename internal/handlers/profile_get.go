package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/middlewares"
)

// NewProfileGetHandler returns an HTTP handler serving the authenticated
// member's own profile.
// @Summary Get own profile
// @Description Returns the profile of the authenticated member
// @Tags profile
// @Produce json
// @Success 200 {object} models.MemberPublic "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile/me [get]
// @Security BearerAuth
func NewProfileGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		member, err := middlewares.GetPrincipalFromContext(r.Context())
		if err != nil {
			logger.Log.Errorw("no principal on protected route", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(member.Public())
	}
}
