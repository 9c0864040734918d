package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email string, phone *string, about, password string) (*models.MemberDB, error)
}

// RegisterRequest represents the JSON body for member registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username, immutable after registration
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Phone
	// default: +1-555-0100
	Phone *string `json:"phone"`

	// About
	// default: Selling my old stuff
	About string `json:"about"`

	// Password, at least 8 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

func (req *RegisterRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Username == "" {
		errs["username"] = "username is required"
	} else if len(req.Username) > 150 {
		errs["username"] = "username must be at most 150 characters"
	}
	if req.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs["email"] = "email is not a valid address"
	}
	if len(req.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	return errs
}

// NewRegisterHandler returns an HTTP handler for member registration.
// @Summary Register a new member
// @Description Creates a new member account. Username and email uniqueness is case-insensitive. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Member registration request"
// @Success 201 {object} models.MemberPublic "Member successfully registered"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already taken"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if errs := req.validate(); len(errs) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidationErrorResponse{Errors: errs})
			return
		}

		member, err := svc.Register(r.Context(), req.Username, req.Email, req.Phone, req.About, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username is already taken"})
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Email is already taken"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(member.Public())
	}
}
