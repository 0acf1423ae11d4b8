package syncctl

import (
	"context"
	"fmt"

	"github.com/dkozyrev/reeler/internal/state"
)

// Pending is a destructive action awaiting explicit confirmation. The
// request is not issued until Confirm runs; dropping a Pending without
// confirming is a no-op, never an error. This keeps the confirmation step
// out of the core as a two-step protocol instead of a blocking prompt.
type Pending struct {
	Label string
	run   func(ctx context.Context) error
}

// Confirm issues the request and the follow-up re-fetch.
func (p *Pending) Confirm(ctx context.Context) error {
	if p == nil || p.run == nil {
		return nil
	}
	return p.run(ctx)
}

// DeleteFilm prepares deletion of a film. Name is only used for the
// confirmation label.
func (c *Controller) DeleteFilm(id int64, name string) *Pending {
	return &Pending{
		Label: fmt.Sprintf("Delete film %q?", name),
		run: func(ctx context.Context) error {
			if err := c.client.DeleteFilm(ctx, id); err != nil {
				return err
			}
			return c.RefreshFilms(ctx)
		},
	}
}

// DeleteUser prepares deletion of a user.
func (c *Controller) DeleteUser(id int64, name string) *Pending {
	return &Pending{
		Label: fmt.Sprintf("Delete user %q?", name),
		run: func(ctx context.Context) error {
			if err := c.client.DeleteUser(ctx, id); err != nil {
				return err
			}
			return c.RefreshUsers(ctx)
		},
	}
}

// DeleteReview prepares deletion of a review.
func (c *Controller) DeleteReview(id int64) *Pending {
	return &Pending{
		Label: fmt.Sprintf("Delete review #%d?", id),
		run: func(ctx context.Context) error {
			if err := c.client.DeleteReview(ctx, id); err != nil {
				return err
			}
			return c.refreshReviewsLast(ctx)
		},
	}
}

// RemoveFriend prepares removal of a friend from the active user's list.
// The active user is resolved now so a later context switch cannot
// redirect the confirmed request.
func (c *Controller) RemoveFriend(friendID int64, name string, sel *state.Selection) (*Pending, error) {
	userID, ok := sel.ActiveUser()
	if !ok {
		return nil, ErrNoActiveUser
	}
	if friendID == userID {
		return nil, ErrSelfFriend
	}
	return &Pending{
		Label: fmt.Sprintf("Remove %s from friends?", name),
		run: func(ctx context.Context) error {
			if err := c.client.RemoveFriend(ctx, userID, friendID); err != nil {
				return err
			}
			return c.RefreshFriends(ctx, sel)
		},
	}, nil
}
