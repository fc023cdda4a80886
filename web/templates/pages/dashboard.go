package pages

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"personnel-portal/web/templates/layouts"
)

// Dashboard renders the landing page for any signed-in identity.
func Dashboard(d layouts.AppData) Node {
	return layouts.App(d,
		Div(
			Class("card"),
			H2(Text("Welcome")),
			P(Text("You are signed in as "), Strong(Text(d.Username)), Text(".")),
			P(Text("Role: "), Strong(Text(d.Role))),
		),
	)
}
