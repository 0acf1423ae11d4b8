package ui

import (
	"strings"
)

type helpEntry struct {
	key  string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{
		title: "Global",
		entries: []helpEntry{
			{"q / ctrl+c", "quit"},
			{"h / ?", "toggle this help"},
			{"T", "cycle theme"},
			{"j / k", "move cursor"},
			{"home / G", "jump to first / last row"},
		},
	},
	{
		title: "Views",
		entries: []helpEntry{
			{"f", "films"},
			{"u", "users"},
			{"o", "friends of the active user"},
			{"r", "reviews"},
			{"a", "activity feed of the active user"},
			{"g", "genres and MPA ratings"},
			{"P", "popular films"},
			{"R", "recommendations for the active user"},
		},
	},
	{
		title: "Films",
		entries: []helpEntry{
			{"n / e / d", "new, edit, delete"},
			{"l / L", "like, unlike (as the active user)"},
			{"v", "reviews for the selected film"},
		},
	},
	{
		title: "Users",
		entries: []helpEntry{
			{"enter", "set the selected user active"},
			{"x", "clear the active user"},
			{"n / e / d", "new, edit, delete"},
			{"+", "add the selected user as a friend"},
		},
	},
	{
		title: "Friends",
		entries: []helpEntry{
			{"d / -", "remove from friends"},
		},
	},
	{
		title: "Reviews",
		entries: []helpEntry{
			{"n / e / d", "new, edit, delete"},
			{"v / V", "mark useful / not useful"},
			{"z / Z", "withdraw a useful / not-useful vote"},
		},
	},
	{
		title: "Forms",
		entries: []helpEntry{
			{"tab / shift+tab", "next / previous field"},
			{"space", "toggle genre, MPA or verdict rows"},
			{"ctrl+s", "save"},
			{"esc", "cancel"},
		},
	},
}

// renderHelp draws the full-screen key reference.
func (m Model) renderHelp() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Logo.Render("reeler") + s.MutedText.Render("  key reference"))
	b.WriteString("\n\n")

	for _, sec := range helpSections {
		b.WriteString(s.Title.Render(sec.title) + "\n")
		for _, e := range sec.entries {
			b.WriteString("  " + s.AccentText.Render(padRight(e.key, 16)) + s.Text.Render(e.desc) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(s.FaintText.Render("Press any key to close."))
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
