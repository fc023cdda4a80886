package pages

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"personnel-portal/web/templates/layouts"
)

// LoginData carries the optional banners above the sign-in form.
type LoginData struct {
	ErrorMsg string
	InfoMsg  string
}

// Login renders the sign-in page.
func Login(d LoginData) Node {
	content := []Node{
		H1(Text("Personnel Portal")),
		P(Class("muted"), Text("Sign in with your portal account.")),
		Form(
			Method("post"),
			Action("/login"),
			Class("login-form"),
			Label(For("username"), Text("Username")),
			Input(Type("text"), ID("username"), Name("username"), AutoComplete("username"), Required()),
			Label(For("password"), Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), AutoComplete("current-password"), Required()),
			Button(Type("submit"), Class("btn btn-primary"), Text("Sign in")),
		),
	}
	if d.InfoMsg != "" {
		content = append([]Node{P(Class("info"), Text(d.InfoMsg))}, content...)
	}
	if d.ErrorMsg != "" {
		content = append([]Node{P(Class("error"), Text(d.ErrorMsg))}, content...)
	}

	return layouts.Bare("Sign in", content...)
}
