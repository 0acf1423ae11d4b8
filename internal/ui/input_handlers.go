package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkozyrev/reeler/internal/filmorate"
	"github.com/dkozyrev/reeler/internal/state"
	"github.com/dkozyrev/reeler/internal/syncctl"
)

// handleFilmsKey processes keyboard input for the films view.
func (m Model) handleFilmsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.sel.ClearEditTarget(state.KindFilm)
		m.sel.ClearComposite()
		m.form = newFilmForm(nil, m.snapshot.Genres, m.snapshot.Mpa)
		m.mode = ModeForm
		return m, nil
	}

	film, ok := m.selectedFilm()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "e":
		m.sel.SetEditTarget(state.KindFilm, film.ID)
		m.sel.ClearComposite()
		if film.Mpa != nil {
			m.sel.SetMpa(film.Mpa.ID)
		}
		for _, g := range film.Genres {
			m.sel.ToggleGenre(g.ID)
		}
		m.form = newFilmForm(&film, m.snapshot.Genres, m.snapshot.Mpa)
		m.mode = ModeForm
		return m, nil

	case "d":
		m.pending = m.ctrl.DeleteFilm(film.ID, film.Name)
		m.mode = ModeConfirm
		return m, nil

	case "l":
		return m, m.action(fmt.Sprintf("Liked %q", film.Name), func(ctx context.Context) error {
			return m.ctrl.LikeFilm(ctx, film.ID, m.sel)
		})

	case "L":
		return m, m.action(fmt.Sprintf("Unliked %q", film.Name), func(ctx context.Context) error {
			return m.ctrl.UnlikeFilm(ctx, film.ID, m.sel)
		})

	case "v":
		// Reviews scoped to the selected film.
		m.view = ViewReviews
		m.cursor = 0
		return m, m.action("", func(ctx context.Context) error {
			return m.ctrl.RefreshReviews(ctx, film.ID, 0)
		})
	}

	return m, nil
}

// handleUsersKey processes keyboard input for the users view.
func (m Model) handleUsersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.sel.ClearEditTarget(state.KindUser)
		m.form = newUserForm(nil)
		m.mode = ModeForm
		return m, nil

	case "x":
		m.sel.ClearActiveUser()
		m.ctrl.ClearFeed()
		m.refreshSnapshot()
		m.setNotice("Active user cleared", false)
		return m, nil
	}

	user, ok := m.selectedUser()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if active, has := m.sel.ActiveUser(); !has || active != user.ID {
			// Feed context changes with the active user.
			m.ctrl.ClearFeed()
		}
		m.sel.SetActiveUser(user.ID)
		m.refreshSnapshot()
		m.setNotice("Active user: "+user.DisplayName(), false)
		return m, nil

	case "e":
		m.sel.SetEditTarget(state.KindUser, user.ID)
		m.form = newUserForm(&user)
		m.mode = ModeForm
		return m, nil

	case "d":
		m.pending = m.ctrl.DeleteUser(user.ID, user.DisplayName())
		m.mode = ModeConfirm
		return m, nil

	case "+":
		return m, m.action("Added "+user.DisplayName()+" to friends", func(ctx context.Context) error {
			return m.ctrl.AddFriend(ctx, user.ID, m.sel)
		})
	}

	return m, nil
}

// handleFriendsKey processes keyboard input for the friends view.
func (m Model) handleFriendsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	friend, ok := m.selectedFriend()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "d", "-":
		pending, err := m.ctrl.RemoveFriend(friend.ID, friend.DisplayName(), m.sel)
		if err != nil {
			m.setNotice(describeContextErr(err), true)
			return m, nil
		}
		m.pending = pending
		m.mode = ModeConfirm
		return m, nil
	}

	return m, nil
}

// handleReviewsKey processes keyboard input for the reviews view.
func (m Model) handleReviewsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.sel.ClearEditTarget(state.KindReview)
		m.form = newReviewForm(nil)
		m.mode = ModeForm
		return m, nil
	}

	review, ok := m.selectedReview()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "e":
		m.sel.SetEditTarget(state.KindReview, review.ReviewID)
		m.form = newReviewForm(&review)
		m.mode = ModeForm
		return m, nil

	case "d":
		m.pending = m.ctrl.DeleteReview(review.ReviewID)
		m.mode = ModeConfirm
		return m, nil

	case "v":
		return m, m.voteCmd(review.ReviewID, syncctl.VoteLike, "Marked review useful")
	case "V":
		return m, m.voteCmd(review.ReviewID, syncctl.VoteDislike, "Marked review not useful")
	case "z":
		return m, m.voteCmd(review.ReviewID, syncctl.VoteRetractLike, "Vote withdrawn")
	case "Z":
		return m, m.voteCmd(review.ReviewID, syncctl.VoteRetractDislike, "Vote withdrawn")
	}

	return m, nil
}

// handleFeedKey processes keyboard input for the feed view. The feed is
// read-only; navigation is handled globally.
func (m Model) handleFeedKey(tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m, nil
}

// handleConfirmKey resolves the two-step confirmation for a destructive
// action. Declining drops the pending request without issuing it.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		pending := m.pending
		m.pending = nil
		m.mode = ModeBrowse
		return m, m.action("Done", pending.Confirm)

	case "n", "N", "esc":
		m.pending = nil
		m.mode = ModeBrowse
		m.setNotice("Cancelled", false)
		return m, nil
	}
	return m, nil
}

func (m Model) voteCmd(reviewID int64, vote syncctl.Vote, notice string) tea.Cmd {
	return m.action(notice, func(ctx context.Context) error {
		return m.ctrl.VoteReview(ctx, reviewID, vote, m.sel)
	})
}

func (m Model) selectedFilm() (filmorate.Film, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Films) {
		return filmorate.Film{}, false
	}
	return m.snapshot.Films[m.cursor], true
}

func (m Model) selectedUser() (filmorate.User, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Users) {
		return filmorate.User{}, false
	}
	return m.snapshot.Users[m.cursor], true
}

func (m Model) selectedFriend() (filmorate.User, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Friends) {
		return filmorate.User{}, false
	}
	return m.snapshot.Friends[m.cursor], true
}

func (m Model) selectedReview() (filmorate.Review, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Reviews) {
		return filmorate.Review{}, false
	}
	return m.snapshot.Reviews[m.cursor], true
}

// describeContextErr turns a missing-context failure into the corrective
// message the operator needs.
func describeContextErr(err error) string {
	switch err {
	case syncctl.ErrNoActiveUser:
		return "Select an active user first (u, then enter)"
	case syncctl.ErrSelfFriend:
		return "Cannot befriend yourself"
	default:
		return err.Error()
	}
}
