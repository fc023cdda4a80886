package web

import (
	"net/http"

	"maragu.dev/gomponents"

	"personnel-portal/web/templates/layouts"
	"personnel-portal/web/templates/pages"
)

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// layoutData builds the page shell data from the request identity.
func layoutData(r *http.Request, title, activeNav string) layouts.AppData {
	d := layouts.AppData{Title: title, ActiveNav: activeNav}
	if identity := identityFromContext(r.Context()); identity != nil {
		d.Username = identity.Username
		d.Role = string(identity.Role)
	}
	return d
}

// root handles GET / — the portal entry point just forwards to the dashboard
// (which in turn bounces unauthenticated visitors to /login).
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ── Login / logout ────────────────────────────────────────────────────────────

// loginPage handles GET /login — renders the sign-in page.
// Redirects to /dashboard if already authenticated. The ?error and ?logout
// query markers select the banner shown above the form.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if h.currentIdentity(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	d := pages.LoginData{}
	if r.URL.Query().Has("error") {
		d.ErrorMsg = "Invalid username or password."
	}
	if r.URL.Query().Has("logout") {
		d.InfoMsg = "You have been signed out."
	}
	renderHTML(w, http.StatusOK, pages.Login(d))
}

// loginFormSubmit handles POST /login. Both unknown usernames and wrong
// passwords land on the same /login?error redirect so the form reveals
// nothing about which usernames exist.
func (h *Handler) loginFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error", http.StatusSeeOther)
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")

	identity, err := h.svc.Authenticate(r.Context(), username, password)
	if err != nil {
		http.Redirect(w, r, "/login?error", http.StatusSeeOther)
		return
	}

	h.startSession(w, *identity)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// logoutAction terminates the session and redirects to /login?logout.
func (h *Handler) logoutAction(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r)
	http.Redirect(w, r, "/login?logout", http.StatusSeeOther)
}

// ── Dashboard / profile ───────────────────────────────────────────────────────

// dashboardPage handles GET /dashboard — shows the signed-in identity.
func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, pages.Dashboard(layoutData(r, "Dashboard", "dashboard")))
}

// profilePage handles GET /profile. There is no profile screen yet; it shows
// the dashboard until one exists.
func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, pages.Dashboard(layoutData(r, "Profile", "dashboard")))
}

// ── Error pages ───────────────────────────────────────────────────────────────

// errorPage handles GET /error.
func (h *Handler) errorPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, pages.Error("Something went wrong", "An unexpected error occurred. Please try again."))
}

// forbiddenPage is rendered when an authenticated identity lacks the role a
// path demands.
func (h *Handler) forbiddenPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusForbidden, pages.Error("Access denied", "You do not have permission to view this page."))
}
