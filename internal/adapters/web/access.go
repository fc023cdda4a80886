package web

import "strings"

// AccessLevel is the privilege a request path demands.
type AccessLevel int

const (
	// LevelPublic paths bypass authentication entirely.
	LevelPublic AccessLevel = iota
	// LevelAuthenticated paths require any signed-in identity.
	LevelAuthenticated
	// LevelAdmin paths require the ADMIN role.
	LevelAdmin
)

func (l AccessLevel) String() string {
	switch l {
	case LevelPublic:
		return "PUBLIC"
	case LevelAdmin:
		return "ADMIN_ONLY"
	default:
		return "AUTHENTICATED_ONLY"
	}
}

// accessRule pairs a path pattern with the level it demands. Rules are
// evaluated top to bottom, first match wins.
type accessRule struct {
	pattern string
	exact   bool // require full equality instead of prefix match
	level   AccessLevel
}

var accessRules = []accessRule{
	{pattern: "/", exact: true, level: LevelPublic},
	{pattern: "/css/", level: LevelPublic},
	{pattern: "/js/", level: LevelPublic},
	{pattern: "/images/", level: LevelPublic},
	{pattern: "/webjars/", level: LevelPublic},
	{pattern: "/static/", level: LevelPublic},
	{pattern: "/error", level: LevelPublic},
	{pattern: "/login", level: LevelPublic},
	{pattern: "/logout", level: LevelPublic},
	{pattern: "/api/health", level: LevelPublic},
	{pattern: "/employees", level: LevelAdmin},
	{pattern: "/api/employees", level: LevelAdmin},
}

// Classify maps a request path to its required access level. Paths matching
// no rule require an authenticated identity.
func Classify(path string) AccessLevel {
	for _, rule := range accessRules {
		if rule.exact {
			if path == rule.pattern {
				return rule.level
			}
			continue
		}
		if strings.HasPrefix(path, rule.pattern) {
			return rule.level
		}
	}
	return LevelAuthenticated
}

// isAPIPath decides whether denials should be JSON instead of a redirect or
// an HTML error page.
func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
