package web

import (
	"context"
	"net/http"

	"personnel-portal/internal/core"
)

const sessionCookie = "portal_session"

type identityKey struct{}

// identityFromContext returns the authenticated identity stored in ctx, or nil.
func identityFromContext(ctx context.Context) *core.Identity {
	v, _ := ctx.Value(identityKey{}).(*core.Identity)
	return v
}

// currentIdentity resolves the session cookie against the session store.
// Returns nil for requests with no cookie, an unknown token, or an expired
// session.
func (h *Handler) currentIdentity(r *http.Request) *core.Identity {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	identity, ok := h.sessions.get(cookie.Value)
	if !ok {
		return nil
	}
	return identity
}

// EnforceAccess intercepts every request and applies the ordered access
// rules: public paths pass through, admin paths demand the ADMIN role, all
// remaining paths demand any authenticated identity. The resolved identity
// is injected into the request context for downstream handlers; on public
// paths it is attached when present but never required.
func (h *Handler) EnforceAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := Classify(r.URL.Path)
		identity := h.currentIdentity(r)

		if level != LevelPublic {
			if identity == nil {
				if isAPIPath(r.URL.Path) {
					writeError(w, r, "authentication required", "UNAUTHORIZED", http.StatusUnauthorized)
				} else {
					http.Redirect(w, r, "/login", http.StatusSeeOther)
				}
				return
			}
			if level == LevelAdmin && identity.Role != core.RoleAdmin {
				if isAPIPath(r.URL.Path) {
					writeError(w, r, "admin role required", "FORBIDDEN", http.StatusForbidden)
				} else {
					h.forbiddenPage(w, r)
				}
				return
			}
		}

		if identity != nil {
			r = r.WithContext(context.WithValue(r.Context(), identityKey{}, identity))
		}
		next.ServeHTTP(w, r)
	})
}

// startSession creates a session for identity and sets the cookie.
func (h *Handler) startSession(w http.ResponseWriter, identity core.Identity) {
	token := h.sessions.create(identity)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.sessions.ttl.Seconds()),
	})
}

// endSession tears down the session (if any) and clears the cookie.
func (h *Handler) endSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		h.sessions.delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// me handles GET /api/auth/me — returns the current identity.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())
	if identity == nil {
		writeError(w, r, "not authenticated", "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}

	type meResponse struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	writeJSON(w, http.StatusOK, meResponse{
		Username: identity.Username,
		Role:     string(identity.Role),
	})
}
