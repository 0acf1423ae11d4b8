package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkozyrev/reeler/internal/filmorate"
	"github.com/dkozyrev/reeler/internal/state"
)

type formKind int

const (
	formFilm formKind = iota
	formUser
	formReview
)

// form is an in-place entity editor. Text fields come first in the focus
// order; the film form appends genre and MPA picker rows, the review form
// appends a verdict row. Picker rows toggle with space or enter.
type form struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int

	genres []filmorate.Genre
	mpa    []filmorate.MpaRating

	positive bool
}

func newInput(placeholder, value string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.SetValue(value)
	return in
}

func newFilmForm(film *filmorate.Film, genres []filmorate.Genre, mpa []filmorate.MpaRating) *form {
	f := &form{
		kind:   formFilm,
		title:  "New film",
		labels: []string{"Name", "Description", "Release date (YYYY-MM-DD)", "Duration (minutes)"},
		genres: genres,
		mpa:    mpa,
	}
	var name, desc, release, duration string
	if film != nil {
		f.title = "Edit film"
		name = film.Name
		desc = film.Description
		release = film.ReleaseDate
		duration = strconv.Itoa(film.Duration)
	}
	f.inputs = []textinput.Model{
		newInput("Film name", name, 120),
		newInput("Short description", desc, 200),
		newInput("1999-03-31", release, 10),
		newInput("120", duration, 5),
	}
	f.inputs[0].Focus()
	return f
}

func newUserForm(user *filmorate.User) *form {
	f := &form{
		kind:   formUser,
		title:  "New user",
		labels: []string{"Email", "Login", "Name (optional)", "Birthday (YYYY-MM-DD, optional)"},
	}
	var email, login, name, birthday string
	if user != nil {
		f.title = "Edit user"
		email = user.Email
		login = user.Login
		name = user.Name
		birthday = user.Birthday
	}
	f.inputs = []textinput.Model{
		newInput("user@example.com", email, 120),
		newInput("login", login, 60),
		newInput("Display name", name, 120),
		newInput("1990-01-15", birthday, 10),
	}
	f.inputs[0].Focus()
	return f
}

func newReviewForm(review *filmorate.Review) *form {
	f := &form{
		kind:     formReview,
		title:    "New review",
		labels:   []string{"Content", "Film ID"},
		positive: true,
	}
	var content, filmID string
	if review != nil {
		f.title = "Edit review"
		content = review.Content
		filmID = strconv.FormatInt(review.FilmID, 10)
		f.positive = review.IsPositive
	}
	f.inputs = []textinput.Model{
		newInput("What did you think?", content, 1000),
		newInput("1", filmID, 10),
	}
	f.inputs[0].Focus()
	return f
}

// extraRows reports how many focusable rows follow the text inputs.
func (f *form) extraRows() int {
	switch f.kind {
	case formFilm:
		return len(f.genres) + len(f.mpa)
	case formReview:
		return 1
	}
	return 0
}

func (f *form) focusCount() int {
	return len(f.inputs) + f.extraRows()
}

func (f *form) onInput() bool {
	return f.focus < len(f.inputs)
}

// genreAt returns the genre under focus, if the focus sits on a genre row.
func (f *form) genreAt() (filmorate.Genre, bool) {
	i := f.focus - len(f.inputs)
	if f.kind != formFilm || i < 0 || i >= len(f.genres) {
		return filmorate.Genre{}, false
	}
	return f.genres[i], true
}

// mpaAt returns the MPA rating under focus, if the focus sits on an MPA row.
func (f *form) mpaAt() (filmorate.MpaRating, bool) {
	i := f.focus - len(f.inputs) - len(f.genres)
	if f.kind != formFilm || i < 0 || i >= len(f.mpa) {
		return filmorate.MpaRating{}, false
	}
	return f.mpa[i], true
}

func (f *form) onVerdict() bool {
	return f.kind == formReview && f.focus == len(f.inputs)
}

func (f *form) moveFocus(delta int) {
	count := f.focusCount()
	if count == 0 {
		return
	}
	f.focus = (f.focus + delta + count) % count
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// handleFormKey processes keyboard input while a form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		m.mode = ModeBrowse
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeForm()
		m.setNotice("Cancelled", false)
		return m, nil

	case "tab", "down":
		f.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		f.moveFocus(-1)
		return m, nil

	case "ctrl+s":
		return m.submitForm()

	case "enter":
		if f.onInput() {
			if f.focus == len(f.inputs)-1 && f.extraRows() == 0 {
				return m.submitForm()
			}
			f.moveFocus(1)
			return m, nil
		}
		m.toggleFormRow()
		return m, nil

	case " ":
		if !f.onInput() {
			m.toggleFormRow()
			return m, nil
		}
	}

	if f.onInput() {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// toggleFormRow flips the picker row under focus. Genre rows toggle set
// membership; MPA rows occupy a single slot, so re-selecting clears it.
func (m *Model) toggleFormRow() {
	f := m.form
	if g, ok := f.genreAt(); ok {
		m.sel.ToggleGenre(g.ID)
		return
	}
	if r, ok := f.mpaAt(); ok {
		if cur, has := m.sel.Mpa(); has && cur == r.ID {
			m.sel.ClearMpa()
		} else {
			m.sel.SetMpa(r.ID)
		}
		return
	}
	if f.onVerdict() {
		f.positive = !f.positive
	}
}

// closeForm dismisses the form and resets form-scoped selection state so a
// cancelled edit cannot leak into the next submission.
func (m *Model) closeForm() {
	if m.form != nil && m.form.kind == formFilm {
		m.sel.ClearComposite()
	}
	m.sel.ClearEditTarget(state.KindFilm)
	m.sel.ClearEditTarget(state.KindUser)
	m.sel.ClearEditTarget(state.KindReview)
	m.form = nil
	m.mode = ModeBrowse
}

// submitForm validates locally obvious input and hands the draft to the
// controller. The form stays open on failure.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	switch f.kind {
	case formFilm:
		duration := 0
		if raw := strings.TrimSpace(f.inputs[3].Value()); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				m.setNotice("Duration must be a whole number of minutes", true)
				return m, nil
			}
			duration = n
		}
		draft := filmorate.FilmDraft{
			Name:        strings.TrimSpace(f.inputs[0].Value()),
			Description: strings.TrimSpace(f.inputs[1].Value()),
			ReleaseDate: strings.TrimSpace(f.inputs[2].Value()),
			Duration:    duration,
		}
		return m, m.submit("Film saved", func(ctx context.Context) error {
			return m.ctrl.SubmitFilm(ctx, draft, m.sel)
		})

	case formUser:
		draft := filmorate.UserDraft{
			Email:    strings.TrimSpace(f.inputs[0].Value()),
			Login:    strings.TrimSpace(f.inputs[1].Value()),
			Name:     strings.TrimSpace(f.inputs[2].Value()),
			Birthday: strings.TrimSpace(f.inputs[3].Value()),
		}
		return m, m.submit("User saved", func(ctx context.Context) error {
			return m.ctrl.SubmitUser(ctx, draft, m.sel)
		})

	case formReview:
		var filmID int64
		if raw := strings.TrimSpace(f.inputs[1].Value()); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				m.setNotice("Film ID must be a number", true)
				return m, nil
			}
			filmID = n
		}
		draft := filmorate.ReviewDraft{
			Content:    strings.TrimSpace(f.inputs[0].Value()),
			IsPositive: f.positive,
			FilmID:     filmID,
		}
		return m, m.submit("Review saved", func(ctx context.Context) error {
			return m.ctrl.SubmitReview(ctx, draft, m.sel)
		})
	}
	return m, nil
}

// renderForm draws the open form as the main body.
func (m Model) renderForm() string {
	f := m.form
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Title.Render(f.title))
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		marker := "  "
		label := s.MutedText.Render(f.labels[i])
		if f.focus == i {
			marker = s.AccentText.Render("> ")
			label = s.Text.Render(f.labels[i])
		}
		b.WriteString(fmt.Sprintf("%s%s\n  %s\n", marker, label, in.View()))
	}

	switch f.kind {
	case formFilm:
		b.WriteString("\n" + s.Title.Render("Genres") + s.FaintText.Render("  (space toggles)") + "\n")
		for i, g := range f.genres {
			b.WriteString(m.renderPickRow(f.focus == len(f.inputs)+i, m.sel.HasGenre(g.ID), g.Name))
		}
		b.WriteString("\n" + s.Title.Render("MPA rating") + "\n")
		selectedMpa, hasMpa := m.sel.Mpa()
		for i, r := range f.mpa {
			b.WriteString(m.renderPickRow(f.focus == len(f.inputs)+len(f.genres)+i, hasMpa && selectedMpa == r.ID, r.Name))
		}

	case formReview:
		verdict := "negative"
		if f.positive {
			verdict = "positive"
		}
		marker := "  "
		if f.onVerdict() {
			marker = s.AccentText.Render("> ")
		}
		b.WriteString(fmt.Sprintf("\n%s%s %s\n", marker, s.MutedText.Render("Verdict:"), s.Text.Render(verdict)))
	}

	b.WriteString("\n" + s.FaintText.Render("ctrl+s save · tab next field · esc cancel") + "\n")
	return b.String()
}

func (m Model) renderPickRow(focused, selected bool, name string) string {
	s := m.theme.Styles()
	marker := "  "
	if focused {
		marker = s.AccentText.Render("> ")
	}
	box := "[ ]"
	if selected {
		box = "[x]"
	}
	line := fmt.Sprintf("%s%s %s", marker, box, name)
	if focused {
		return s.Selected.Render(line) + "\n"
	}
	return s.Text.Render(line) + "\n"
}
