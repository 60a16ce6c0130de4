package handler

import (
	"encoding/json"
	"net/http"

	"campus-eats/internal/middleware"
	"campus-eats/internal/model"
	"campus-eats/internal/service"
	"campus-eats/pkg/apierror"
)

// AccountHandler serves one role's account routes. The router mounts two
// instances of it, one under each role prefix, over the same service code.
type AccountHandler struct {
	service *service.AccountService
	cookies CookieOptions
}

func NewAccountHandler(service *service.AccountService, cookies CookieOptions) *AccountHandler {
	return &AccountHandler{service: service, cookies: cookies}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	result, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	role := h.service.Role()
	setAuthCookie(w, role.CookieName(), result.Token, h.cookies)
	writeProfile(w, role, result.Profile)
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	result, err := h.service.Login(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	role := h.service.Role()
	setAuthCookie(w, role.CookieName(), result.Token, h.cookies)
	writeProfile(w, role, result.Profile)
}

// Logout clears the auth cookie. The token itself is stateless and is not
// revoked; it stays valid until its natural expiry.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w, h.service.Role().CookieName(), h.cookies)
	writeMessage(w, "Logged Out")
}

func (h *AccountHandler) IsAuth(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthenticated)
		return
	}

	account, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeProfile(w, h.service.Role(), account.Profile())
}
