package handler

import (
	"errors"
	"net/http"

	"github.com/mrunankdekhane/task-manager/internal/api/view"
	"github.com/mrunankdekhane/task-manager/internal/app/service"
	"github.com/mrunankdekhane/task-manager/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *service.SessionManager
	views       *view.Renderer
	cookieName  string
}

func NewAuthHandler(authService *service.AuthService, sessions *service.SessionManager, views *view.Renderer, cookieName string) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, views: views, cookieName: cookieName}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/register", h.showRegister)
	r.Post("/register", h.register)
	r.Get("/login", h.showLogin)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)
}

func (h *AuthHandler) home(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if _, err := h.sessions.Resolve(r.Context(), cookie.Value); err == nil {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
	}
	h.views.Render(w, http.StatusOK, "landing.html", view.Page{Title: "Task Tracker"})
}

func (h *AuthHandler) showRegister(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, "register.html", view.Page{Title: "Register", Form: map[string]string{}})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	req := service.RegisterRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	_, err := h.authService.Register(r.Context(), req)
	if err != nil {
		// User-correctable failures re-show the form with the submitted
		// identity fields; the password is never echoed back.
		if errors.Is(err, common.ErrValidation) || errors.Is(err, common.ErrDuplicateIdentity) {
			h.views.Render(w, common.HTTPStatusFromError(err), "register.html", view.Page{
				Title: "Register",
				Error: userMessage(err),
				Form:  map[string]string{"username": req.Username, "email": req.Email},
			})
			return
		}
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) showLogin(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, "login.html", view.Page{Title: "Login", Form: map[string]string{}})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.authService.Authenticate(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			// Deliberately non-specific: same message whether the email
			// or the password was wrong.
			h.views.Render(w, http.StatusUnauthorized, "login.html", view.Page{
				Title: "Login",
				Error: "Invalid email or password.",
				Form:  map[string]string{"email": email},
			})
			return
		}
		h.fail(w, r, err)
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true, // not visible to JS
	})
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	renderFailure(h.views, w, r, err)
}
