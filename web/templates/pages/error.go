package pages

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"personnel-portal/web/templates/layouts"
)

// Error renders a standalone error page.
func Error(title, message string) Node {
	return layouts.Bare(title,
		H1(Text(title)),
		P(Text(message)),
		P(A(Href("/dashboard"), Text("Back to dashboard"))),
	)
}
