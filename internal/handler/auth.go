package handler

import (
	"net/http"

	"github.com/tealedge/portal/internal/api"
	"github.com/tealedge/portal/internal/domain"
	"github.com/tealedge/portal/internal/middleware/metrics"
	"github.com/tealedge/portal/internal/service"
	"github.com/tealedge/portal/internal/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body api.SignupRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	snap := h.portal.Signup(body.Name, body.Email, body.Password, body.ConfirmPassword, domain.Role(body.Role), body.AdminKey)
	if rej := rejectionOf(snap); rej != "" {
		metrics.RecordCommand("signup", true)
		http.Error(w, rej, statusOf(snap))
		return
	}
	metrics.RecordCommand("signup", false)

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.SignupResponse{Message: snap.Message})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	_, accessToken, err := h.portal.Authenticate(body.Email, body.Password, domain.Role(body.Role))
	if err != nil {
		metrics.RecordCommand("login", true)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.RecordCommand("login", false)

	cookie := &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    accessToken,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)

	writeJSON(w, api.LoginResponse{Message: "You logged in", AccessToken: accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	metrics.RecordCommand("logout", false)

	writeJSON(w, api.LogoutResponse{Message: "You have been logged out."})
}

// rejectionOf pulls the rejection message out of a snapshot produced by
// a bound-session command. A cleared or informational message after a
// successful command is not a rejection.
func rejectionOf(snap service.Snapshot) string {
	if snap.Rejection == nil {
		return ""
	}
	return snap.Rejection.Message
}

func statusOf(snap service.Snapshot) int {
	if snap.Rejection == nil {
		return http.StatusBadRequest
	}
	return snap.Rejection.StatusCode()
}
