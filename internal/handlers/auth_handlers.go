package handlers

import (
	"net/http"

	"github.com/edmsantos/account-api/internal/auth"
	"github.com/edmsantos/account-api/internal/constants"
	"github.com/edmsantos/account-api/internal/models"
	"github.com/edmsantos/account-api/internal/utils"
)

// AuthHandler handles registration and authentication routes.
type AuthHandler struct {
	authService AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService AuthServiceInterface) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration.
//
// POST /user/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if _, err := h.authService.RegisterUser(r.Context(), &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Message(w, constants.StatusCreated, constants.MsgRegisterSuccess)
}

// Authenticate handles credential authentication and session token issuing.
//
// POST /user/authenticate
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var creds models.UserCredentials
	if err := utils.DecodeAndValidate(r, &creds); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	authenticated, err := h.authService.AuthenticateUser(r.Context(), &creds)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, authenticated)
}

// CurrentUser returns the account of the authenticated caller.
//
// GET /user/me
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, user)
}
