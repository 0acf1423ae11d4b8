package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkozyrev/reeler/internal/config"
	"github.com/dkozyrev/reeler/internal/prefs"
	"github.com/dkozyrev/reeler/internal/state"
	"github.com/dkozyrev/reeler/internal/syncctl"
)

// View represents the current active view.
type View int

const (
	ViewFilms View = iota
	ViewUsers
	ViewFriends
	ViewReviews
	ViewFeed
	ViewReference
)

// Mode represents what the keyboard currently drives.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
	ModeConfirm
	ModeHelp
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *syncctl.Controller
	Store      *state.Store
	Selection  *state.Selection
	Config     config.Config
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	ctrl      *syncctl.Controller
	store     *state.Store
	sel       *state.Selection
	cfg       config.Config
	prefsPath string

	theme  Theme
	width  int
	height int
	ready  bool
	body   viewport.Model

	view   View
	mode   Mode
	cursor int

	snapshot     state.Snapshot
	drawnVersion uint64

	notice    string
	noticeErr bool
	noticedAt time.Time

	pending *syncctl.Pending
	form    *form
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	sel := opts.Selection
	if sel == nil {
		sel = state.NewSelection()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		ctrl:      opts.Controller,
		store:     opts.Store,
		sel:       sel,
		cfg:       opts.Config,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		view:      ViewFilms,
		mode:      ModeBrowse,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.action("", m.ctrl.RefreshFilms),
	)
}

// Messages

// actionOKMsg reports a completed controller action. When closeForm is set
// the submission came from a form that should be dismissed.
type actionOKMsg struct {
	notice    string
	closeForm bool
}

// actionErrMsg reports a failed controller action.
type actionErrMsg struct {
	err error
}

// action wraps a controller call in a command. The store mutates off the
// event loop; the resulting message pulls a fresh snapshot on the loop.
func (m Model) action(notice string, fn func(context.Context) error) tea.Cmd {
	return m.runAction(notice, false, fn)
}

// submit is action for form submissions: success dismisses the form,
// failure keeps it open with the error shown.
func (m Model) submit(notice string, fn func(context.Context) error) tea.Cmd {
	return m.runAction(notice, true, fn)
}

func (m Model) runAction(notice string, closeForm bool, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if fn != nil {
			if err := fn(ctx); err != nil {
				return actionErrMsg{err: err}
			}
		}
		return actionOKMsg{notice: notice, closeForm: closeForm}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body = viewport.New(msg.Width, bodyHeight(msg.Height))
		m.ready = true
		return m, nil

	case actionOKMsg:
		m.refreshSnapshot()
		if msg.notice != "" {
			m.setNotice(msg.notice, false)
		}
		if msg.closeForm {
			m.form = nil
			m.mode = ModeBrowse
		}
		m.clampCursor()
		return m, nil

	case actionErrMsg:
		m.refreshSnapshot()
		m.setNotice(msg.err.Error(), true)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.mode == ModeHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m *Model) refreshSnapshot() {
	m.snapshot = m.store.Snapshot()
	m.drawnVersion = m.snapshot.Version
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
	m.noticedAt = time.Now()
}

// handleKey processes keyboard input: mode-specific handlers first, then
// global keys, then the active view's keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeHelp:
		// Any key closes help.
		m.mode = ModeBrowse
		return m, nil
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeForm:
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "h", "?":
		m.mode = ModeHelp
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "f":
		return m.showView(ViewFilms)
	case "u":
		return m.showView(ViewUsers)
	case "o":
		return m.showView(ViewFriends)
	case "r":
		return m.showView(ViewReviews)
	case "a":
		return m.showView(ViewFeed)
	case "g":
		return m.showView(ViewReference)

	case "P":
		// Popular films replace the film snapshot, like the original
		// client's popular button.
		m.leaveFeed(ViewFilms)
		m.view = ViewFilms
		m.cursor = 0
		return m, m.action("", func(ctx context.Context) error {
			return m.ctrl.RefreshPopular(ctx, m.cfg.PopularCount)
		})

	case "R":
		m.leaveFeed(ViewFilms)
		m.view = ViewFilms
		m.cursor = 0
		return m, m.action("", func(ctx context.Context) error {
			return m.ctrl.RefreshRecommendations(ctx, m.sel)
		})

	case "j", "down":
		m.moveCursor(1)
		return m, nil
	case "k", "up":
		m.moveCursor(-1)
		return m, nil
	case "home":
		m.cursor = 0
		return m, nil
	case "G", "end":
		m.cursor = m.rowCount() - 1
		m.clampCursor()
		return m, nil
	}

	switch m.view {
	case ViewFilms:
		return m.handleFilmsKey(msg)
	case ViewUsers:
		return m.handleUsersKey(msg)
	case ViewFriends:
		return m.handleFriendsKey(msg)
	case ViewReviews:
		return m.handleReviewsKey(msg)
	case ViewFeed:
		return m.handleFeedKey(msg)
	}

	return m, nil
}

// showView activates a view and refreshes its owning collection.
func (m Model) showView(v View) (tea.Model, tea.Cmd) {
	m.leaveFeed(v)
	m.view = v
	m.cursor = 0
	m.body.SetYOffset(0)

	switch v {
	case ViewFilms:
		return m, m.action("", m.ctrl.RefreshFilms)
	case ViewUsers:
		return m, m.action("", m.ctrl.RefreshUsers)
	case ViewFriends:
		return m, m.action("", func(ctx context.Context) error {
			return m.ctrl.RefreshFriends(ctx, m.sel)
		})
	case ViewReviews:
		return m, m.action("", func(ctx context.Context) error {
			return m.ctrl.RefreshReviews(ctx, 0, 0)
		})
	case ViewFeed:
		return m, m.action("", func(ctx context.Context) error {
			return m.ctrl.RefreshFeed(ctx, m.sel)
		})
	case ViewReference:
		// Reference data is loaded once at startup and cached.
		m.refreshSnapshot()
		return m, nil
	}
	return m, nil
}

// leaveFeed drops the cached feed whenever navigation leaves the feed
// view, returning it to its empty state.
func (m *Model) leaveFeed(next View) {
	if m.view == ViewFeed && next != ViewFeed {
		m.ctrl.ClearFeed()
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// bodyHeight reports the rows left for the scrolling body once the header,
// its surrounding blanks, the status line and the footer are taken.
func bodyHeight(total int) int {
	h := total - 5
	if h < 1 {
		h = 1
	}
	return h
}

// scrollToCursor keeps the cursor row inside the visible body window.
func (m *Model) scrollToCursor() {
	if m.cursor < m.body.YOffset {
		m.body.SetYOffset(m.cursor)
	} else if m.cursor >= m.body.YOffset+m.body.Height {
		m.body.SetYOffset(m.cursor - m.body.Height + 1)
	}
}

func (m *Model) clampCursor() {
	count := m.rowCount()
	if count == 0 {
		m.cursor = 0
		m.body.SetYOffset(0)
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}
	m.scrollToCursor()
}

// rowCount reports how many selectable rows the active view has.
func (m Model) rowCount() int {
	switch m.view {
	case ViewFilms:
		return len(m.snapshot.Films)
	case ViewUsers:
		return len(m.snapshot.Users)
	case ViewFriends:
		return len(m.snapshot.Friends)
	case ViewReviews:
		return len(m.snapshot.Reviews)
	case ViewFeed:
		n := len(m.snapshot.Feed)
		if m.cfg.FeedLimit > 0 && n > m.cfg.FeedLimit {
			return m.cfg.FeedLimit
		}
		return n
	case ViewReference:
		return len(m.snapshot.Genres) + len(m.snapshot.Mpa)
	}
	return 0
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
