package layouts

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AppData configures the signed-in page shell.
type AppData struct {
	Title     string
	Username  string
	Role      string
	ActiveNav string // "dashboard" or "employees"
}

type navItem struct {
	Label string
	Href  string
	Key   string
}

var navItems = []navItem{
	{Label: "Dashboard", Href: "/dashboard", Key: "dashboard"},
	{Label: "Employees", Href: "/employees", Key: "employees"},
}

func pageHead(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | Personnel Portal")),
		Link(Rel("stylesheet"), Href("/static/css/portal.css")),
	)
}

// App renders the authenticated page shell: topbar with the signed-in
// identity, navigation, and the page content. The Employees link is hidden
// from non-admin roles; the route itself stays guarded server-side.
func App(d AppData, content ...Node) Node {
	nav := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		if item.Key == "employees" && d.Role != "ADMIN" {
			continue
		}
		className := ""
		if item.Key == d.ActiveNav {
			className = "active"
		}
		nav = append(nav, A(Href(item.Href), Class(className), Text(item.Label)))
	}

	return HTML(
		Lang("en"),
		pageHead(d.Title),
		Body(
			Main(
				Class("layout"),
				Div(
					Class("topbar"),
					Div(Strong(Text("Personnel Portal"))),
					Div(
						P(Class("muted"), Text("Signed in as "+d.Username+" ("+d.Role+")")),
						Form(
							Method("post"),
							Action("/logout"),
							Button(Type("submit"), Class("secondary"), Text("Sign out")),
						),
					),
				),
				Nav(Class("nav"), Group(nav)),
				H1(Class("page-title"), Text(d.Title)),
				Group(content),
			),
		),
	)
}

// Bare renders the minimal shell used by the login and error pages.
func Bare(title string, content ...Node) Node {
	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Class("bare-body"),
			Main(Class("bare-wrap"), Group(content)),
		),
	)
}
