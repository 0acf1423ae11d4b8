package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkozyrev/reeler/internal/feed"
	"github.com/dkozyrev/reeler/internal/filmorate"
)

// renderMain assembles the standard screen: header, body, status line and
// footer hints.
func (m Model) renderMain() string {
	vp := m.body
	switch {
	case m.mode == ModeForm && m.form != nil:
		vp.SetYOffset(0)
		vp.SetContent(m.renderForm())
	case m.mode == ModeConfirm && m.pending != nil:
		vp.SetYOffset(0)
		vp.SetContent(m.renderConfirm())
	default:
		vp.SetContent(m.renderBody())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		vp.View(),
		"",
		m.renderStatus(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	s := m.theme.Styles()

	tabs := make([]string, 0, 6)
	for _, t := range []struct {
		view  View
		label string
	}{
		{ViewFilms, "Films"},
		{ViewUsers, "Users"},
		{ViewFriends, "Friends"},
		{ViewReviews, "Reviews"},
		{ViewFeed, "Feed"},
		{ViewReference, "Reference"},
	} {
		if t.view == m.view {
			tabs = append(tabs, s.AccentText.Render("["+t.label+"]"))
		} else {
			tabs = append(tabs, s.MutedText.Render(" "+t.label+" "))
		}
	}

	active := s.FaintText.Render("no active user")
	if id, ok := m.sel.ActiveUser(); ok {
		active = s.Chip.Render("as " + m.snapshot.UserName(id))
	}

	line := s.Logo.Render("reeler") + "  " + strings.Join(tabs, " ") + "  " + active
	return s.Header.Width(m.width).Render(line)
}

func (m Model) renderBody() string {
	switch m.view {
	case ViewFilms:
		return m.renderFilms()
	case ViewUsers:
		return m.renderUsers()
	case ViewFriends:
		return m.renderFriends()
	case ViewReviews:
		return m.renderReviews()
	case ViewFeed:
		return m.renderFeed()
	case ViewReference:
		return m.renderReference()
	}
	return ""
}

func (m Model) renderFilms() string {
	s := m.theme.Styles()
	if len(m.snapshot.Films) == 0 {
		return s.FaintText.Render("  No films yet. Press n to add one.")
	}

	var b strings.Builder
	for i, f := range m.snapshot.Films {
		line := filmLine(f)
		b.WriteString(m.listRow(i, line))
	}
	return b.String()
}

func filmLine(f filmorate.Film) string {
	parts := []string{f.Name}
	if f.ReleaseDate != "" {
		parts = append(parts, "("+f.ReleaseDate+")")
	}
	if f.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%dm", f.Duration))
	}
	if f.Mpa != nil && f.Mpa.Name != "" {
		parts = append(parts, "["+f.Mpa.Name+"]")
	}
	if n := f.LikesCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("♥ %d", n))
	}
	if len(f.Genres) > 0 {
		names := make([]string, len(f.Genres))
		for i, g := range f.Genres {
			names[i] = g.Name
		}
		parts = append(parts, strings.Join(names, ", "))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderUsers() string {
	s := m.theme.Styles()
	if len(m.snapshot.Users) == 0 {
		return s.FaintText.Render("  No users yet. Press n to add one.")
	}

	activeID, hasActive := m.sel.ActiveUser()
	var b strings.Builder
	for i, u := range m.snapshot.Users {
		line := userLine(u)
		if hasActive && u.ID == activeID {
			line += "  ★ active"
		}
		b.WriteString(m.listRow(i, line))
	}
	return b.String()
}

func userLine(u filmorate.User) string {
	line := u.DisplayName()
	if u.Name != "" && u.Name != u.Login {
		line += "  (" + u.Login + ")"
	}
	if u.Email != "" {
		line += "  <" + u.Email + ">"
	}
	return line
}

func (m Model) renderFriends() string {
	s := m.theme.Styles()
	if _, ok := m.sel.ActiveUser(); !ok {
		return s.FaintText.Render("  Select an active user first (u, then enter).")
	}
	if len(m.snapshot.Friends) == 0 {
		return s.FaintText.Render("  No friends yet. Add one from the users view with +.")
	}

	var b strings.Builder
	for i, u := range m.snapshot.Friends {
		b.WriteString(m.listRow(i, userLine(u)))
	}
	return b.String()
}

func (m Model) renderReviews() string {
	s := m.theme.Styles()
	if len(m.snapshot.Reviews) == 0 {
		return s.FaintText.Render("  No reviews. Press n to write one.")
	}

	var b strings.Builder
	for i, r := range m.snapshot.Reviews {
		verdict := "−"
		if r.IsPositive {
			verdict = "+"
		}
		film := fmt.Sprintf("film #%d", r.FilmID)
		if f, ok := m.snapshot.FilmByID(r.FilmID); ok {
			film = f.Name
		}
		line := fmt.Sprintf("[%s] %s  by %s on %s  (useful %d)",
			verdict,
			truncate(r.Content, 60),
			m.snapshot.UserName(r.UserID),
			film,
			r.Useful,
		)
		b.WriteString(m.listRow(i, line))
	}
	return b.String()
}

func (m Model) renderFeed() string {
	s := m.theme.Styles()
	if _, ok := m.sel.ActiveUser(); !ok {
		return s.FaintText.Render("  Select an active user first (u, then enter).")
	}
	entries := feed.NormalizeAll(m.snapshot.Feed)
	if m.cfg.FeedLimit > 0 && len(entries) > m.cfg.FeedLimit {
		entries = entries[:m.cfg.FeedLimit]
	}
	if len(entries) == 0 {
		return s.FaintText.Render("  The feed is empty.")
	}

	var b strings.Builder
	for i, e := range entries {
		line := fmt.Sprintf("%s  %s %s  (#%d, %s)",
			e.Icon,
			m.snapshot.UserName(e.UserID),
			e.Phrase,
			e.EntityID,
			relativeTime(e.At),
		)
		b.WriteString(m.listRow(i, line))
	}
	return b.String()
}

func (m Model) renderReference() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Title.Render("Genres") + "\n")
	for i, g := range m.snapshot.Genres {
		b.WriteString(m.listRow(i, fmt.Sprintf("%d  %s", g.ID, g.Name)))
	}
	b.WriteString("\n" + s.Title.Render("MPA ratings") + "\n")
	for i, r := range m.snapshot.Mpa {
		line := fmt.Sprintf("%d  %s", r.ID, r.Name)
		if r.Description != "" {
			line += "  " + r.Description
		}
		b.WriteString(m.listRow(len(m.snapshot.Genres)+i, line))
	}
	return b.String()
}

// listRow renders one selectable row, highlighting the cursor row.
func (m Model) listRow(index int, line string) string {
	s := m.theme.Styles()
	if index == m.cursor {
		return s.Selected.Render("> "+truncate(line, m.width-4)) + "\n"
	}
	return s.Text.Render("  "+truncate(line, m.width-4)) + "\n"
}

func (m Model) renderConfirm() string {
	s := m.theme.Styles()
	var b strings.Builder
	b.WriteString(s.DangerText.Render(m.pending.Label))
	b.WriteString("\n\n")
	b.WriteString(s.MutedText.Render("  y / enter confirm    n / esc cancel"))
	return b.String()
}

// noticeTTL bounds how long a transient notice occupies the status line.
const noticeTTL = 5 * time.Second

func (m Model) renderStatus() string {
	s := m.theme.Styles()

	fresh := m.notice != "" && time.Since(m.noticedAt) < noticeTTL
	left := ""
	switch {
	case fresh && m.noticeErr:
		left = s.DangerText.Render(m.notice)
	case fresh:
		left = s.SuccessText.Render(m.notice)
	case m.snapshot.LastError != nil:
		left = s.DangerText.Render(m.snapshot.LastError.Error())
	case !m.snapshot.LastUpdated.IsZero():
		left = s.MutedText.Render("Updated " + m.snapshot.LastUpdated.Format("15:04:05"))
	}

	right := s.FaintText.Render(fmt.Sprintf("%s  %d rows", m.cfg.BaseURL, m.rowCount()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderFooter() string {
	s := m.theme.Styles()

	hint := "q quit · h help · f/u/o/r/a/g views · j/k move"
	switch m.mode {
	case ModeForm:
		hint = "ctrl+s save · tab next · esc cancel"
	case ModeConfirm:
		hint = "y confirm · n cancel"
	default:
		switch m.view {
		case ViewFilms:
			hint += " · n new · e edit · d delete · l/L like · v reviews · P popular · R recs"
		case ViewUsers:
			hint += " · enter set active · x clear · n new · e edit · d delete · + friend"
		case ViewFriends:
			hint += " · d remove"
		case ViewReviews:
			hint += " · n new · e edit · d delete · v/V vote · z/Z retract"
		}
	}
	return s.Footer.Width(m.width).Render(hint)
}
