package handlers

import (
	"net/http"

	"github.com/edmsantos/account-api/internal/models"
	"github.com/edmsantos/account-api/internal/utils"
)

// PasswordResetHandler handles the two-step password reset flow.
type PasswordResetHandler struct {
	authService AuthServiceInterface
}

// NewPasswordResetHandler creates a new PasswordResetHandler.
func NewPasswordResetHandler(authService AuthServiceInterface) *PasswordResetHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &PasswordResetHandler{
		authService: authService,
	}
}

// RequestReset starts the reset flow: a secret is generated for the account
// and emailed to its registered address.
//
// POST /user/password-reset/request
func (h *PasswordResetHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.NoContent(w)
}

// ProcessReset completes the reset flow: the presented secret is redeemed
// and the account's password replaced.
//
// PATCH /user/password-reset/process
func (h *PasswordResetHandler) ProcessReset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.NoContent(w)
}
