package web

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"personnel-portal/internal/app"
	webui "personnel-portal/web"
)

// Handler holds the PortalService, the session store, and the chi router.
type Handler struct {
	svc        app.PortalService
	sessions   *sessionStore
	router     chi.Router
	fileServer http.Handler
}

// NewHandler creates and wires the chi router with all routes. Every request
// passes through EnforceAccess; the route table below only organizes
// dispatch, the access decision lives in the ordered rule set.
func NewHandler(svc app.PortalService, sessionTTL time.Duration) http.Handler {
	staticFS, err := fs.Sub(webui.Static, "static")
	if err != nil {
		panic("web/static embed sub-FS failed: " + err.Error())
	}

	h := &Handler{
		svc:        svc,
		sessions:   newSessionStore(sessionTTL),
		fileServer: http.FileServer(http.FS(staticFS)),
	}
	h.sessions.startPurge(context.Background())

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB
	r.Use(h.EnforceAccess)

	// ── Public ────────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)
	r.Get("/", h.root)
	r.Get("/error", h.errorPage)
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		http.StripPrefix("/static", h.fileServer).ServeHTTP(w, req)
	})
	r.Get("/login", h.loginPage)
	r.Post("/login", h.loginFormSubmit)
	// GET kept alongside POST for parity with the old portal's logout links.
	r.Get("/logout", h.logoutAction)
	r.Post("/logout", h.logoutAction)

	// ── Authenticated pages ───────────────────────────────────────────────────
	r.Get("/dashboard", h.dashboardPage)
	r.Get("/profile", h.profilePage)

	// ── Admin pages ───────────────────────────────────────────────────────────
	r.Get("/employees", h.employeesListPage)
	r.Get("/employees/new", h.employeeNewPage)
	r.Post("/employees/new", h.employeeCreateAction)
	r.Get("/employees/{id}", h.employeeEditPage)
	r.Post("/employees/{id}", h.employeeUpdateAction)
	r.Post("/employees/{id}/delete", h.employeeDeleteAction)

	// ── JSON API ──────────────────────────────────────────────────────────────
	r.Get("/api/auth/me", h.me)
	r.Route("/api/employees", func(r chi.Router) {
		r.Get("/", h.apiListEmployees)
		r.Post("/", h.apiCreateEmployee)
		r.Get("/search", h.apiSearchEmployees)
		r.Get("/{id}", h.apiGetEmployee)
		r.Put("/{id}", h.apiUpdateEmployee)
		r.Delete("/{id}", h.apiDeleteEmployee)
	})

	h.router = r
	return r
}

// health returns service liveness.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, http.StatusOK, response{Status: "ok"})
}

// employeeID extracts and parses the {id} URL parameter.
func employeeID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
