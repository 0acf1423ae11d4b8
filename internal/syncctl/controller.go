package syncctl

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dkozyrev/reeler/internal/filmorate"
	"github.com/dkozyrev/reeler/internal/state"
)

// Missing-context failures: the action is blocked before any request and
// the operator gets a corrective message.
var (
	// ErrNoActiveUser is returned when an action requiring a user context
	// (likes, friends, reviews, feed) is attempted with none selected.
	ErrNoActiveUser = errors.New("no active user selected")

	// ErrSelfFriend is returned when the active user targets themselves
	// with a friend operation.
	ErrSelfFriend = errors.New("cannot befriend yourself")
)

// DefaultPopularCount matches the original client's popular-films request.
const DefaultPopularCount = 10

// Controller translates user intents into exactly one outbound request
// each, then re-fetches the owning collection on success. The cache is
// never patched locally: after a write, truth is re-read from the server
// so views always reflect server-computed fields.
type Controller struct {
	client filmorate.ServiceClient
	store  *state.Store

	mu               sync.Mutex
	lastReviewFilmID int64
	lastReviewCount  int
}

// New builds a Controller over the given client and store.
func New(client filmorate.ServiceClient, store *state.Store) *Controller {
	return &Controller{client: client, store: store}
}

// LoadReference fetches the immutable reference data (genres, MPA ratings)
// once at startup; both collections are cached for the session.
func (c *Controller) LoadReference(ctx context.Context) error {
	genres, err := c.client.Genres(ctx)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	ratings, err := c.client.MpaRatings(ctx)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	c.store.ReplaceGenres(genres)
	c.store.ReplaceMpa(ratings)
	return nil
}

// RefreshFilms re-fetches the full film collection.
func (c *Controller) RefreshFilms(ctx context.Context) error {
	films, err := c.client.Films(ctx)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	c.store.ReplaceFilms(films)
	return nil
}

// RefreshPopular fetches the most-liked films into the film snapshot. A
// non-positive count falls back to the default.
func (c *Controller) RefreshPopular(ctx context.Context, count int) error {
	if count <= 0 {
		count = DefaultPopularCount
	}
	films, err := c.client.PopularFilms(ctx, count)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	c.store.ReplaceFilms(films)
	return nil
}

// RefreshUsers re-fetches the full user collection.
func (c *Controller) RefreshUsers(ctx context.Context) error {
	users, err := c.client.Users(ctx)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	c.store.ReplaceUsers(users)
	return nil
}

// RefreshReviews re-fetches reviews for the given film filter (zero filmID
// means all films) and remembers the filter so review mutations re-fetch
// the same window.
func (c *Controller) RefreshReviews(ctx context.Context, filmID int64, count int) error {
	c.mu.Lock()
	c.lastReviewFilmID = filmID
	c.lastReviewCount = count
	c.mu.Unlock()
	return c.refreshReviewsLast(ctx)
}

func (c *Controller) refreshReviewsLast(ctx context.Context) error {
	c.mu.Lock()
	filmID, count := c.lastReviewFilmID, c.lastReviewCount
	c.mu.Unlock()

	reviews, err := c.client.Reviews(ctx, filmID, count)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	c.store.ReplaceReviews(reviews)
	return nil
}

// RefreshFriends re-fetches the active user's friend list.
func (c *Controller) RefreshFriends(ctx context.Context, sel *state.Selection) error {
	userID, ok := sel.ActiveUser()
	if !ok {
		return ErrNoActiveUser
	}
	friends, err := c.client.Friends(ctx, userID)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	c.store.ReplaceFriends(friends)
	return nil
}

// RefreshRecommendations fetches films recommended for the active user
// into the film snapshot.
func (c *Controller) RefreshRecommendations(ctx context.Context, sel *state.Selection) error {
	userID, ok := sel.ActiveUser()
	if !ok {
		return ErrNoActiveUser
	}
	films, err := c.client.Recommendations(ctx, userID)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	c.store.ReplaceFilms(films)
	return nil
}

// RefreshFeed fetches the active user's activity feed.
func (c *Controller) RefreshFeed(ctx context.Context, sel *state.Selection) error {
	userID, ok := sel.ActiveUser()
	if !ok {
		return ErrNoActiveUser
	}
	events, err := c.client.Feed(ctx, userID)
	if err != nil {
		c.store.SetError(err)
		return err
	}
	c.store.ReplaceFeed(events)
	return nil
}

// ClearFeed empties the cached feed; called when the feed view is left or
// the active user changes.
func (c *Controller) ClearFeed() {
	c.store.ClearFeed()
}

// SubmitFilm validates the draft, composes the payload from the draft plus
// the composite selection (single MPA reference, de-duplicated genre set),
// and routes it: a film edit target on the selection selects update
// semantics with the id attached, its absence selects create semantics.
// On success the composite selection and edit target are cleared and the
// film collection is re-fetched in full.
func (c *Controller) SubmitFilm(ctx context.Context, draft filmorate.FilmDraft, sel *state.Selection) error {
	draft.ID = 0
	if id, editing := sel.EditTarget(state.KindFilm); editing {
		draft.ID = id
	}
	if mpaID, ok := sel.Mpa(); ok {
		draft.MpaID = mpaID
	}
	draft.GenreIDs = sel.SelectedGenres()

	if err := filmorate.CheckFilm(draft); err != nil {
		return err
	}

	var err error
	if draft.ID != 0 {
		_, err = c.client.UpdateFilm(ctx, draft)
	} else {
		_, err = c.client.CreateFilm(ctx, draft)
	}
	if err != nil {
		return err
	}

	sel.ClearComposite()
	sel.ClearEditTarget(state.KindFilm)
	return c.RefreshFilms(ctx)
}

// SubmitUser validates the draft and routes it by the user edit target.
// A blank name defaults to the login before the payload leaves the client.
func (c *Controller) SubmitUser(ctx context.Context, draft filmorate.UserDraft, sel *state.Selection) error {
	draft.ID = 0
	if id, editing := sel.EditTarget(state.KindUser); editing {
		draft.ID = id
	}

	if err := filmorate.CheckUser(draft); err != nil {
		return err
	}

	var err error
	if draft.ID != 0 {
		_, err = c.client.UpdateUser(ctx, draft)
	} else {
		_, err = c.client.CreateUser(ctx, draft)
	}
	if err != nil {
		return err
	}

	sel.ClearEditTarget(state.KindUser)
	return c.RefreshUsers(ctx)
}

// SubmitReview validates the draft and routes it by the review edit
// target. The review is always attributed to the active user.
func (c *Controller) SubmitReview(ctx context.Context, draft filmorate.ReviewDraft, sel *state.Selection) error {
	userID, ok := sel.ActiveUser()
	if !ok {
		return ErrNoActiveUser
	}
	draft.UserID = userID
	draft.ReviewID = 0
	if id, editing := sel.EditTarget(state.KindReview); editing {
		draft.ReviewID = id
	}

	if err := filmorate.CheckReview(draft); err != nil {
		return err
	}

	var err error
	if draft.ReviewID != 0 {
		_, err = c.client.UpdateReview(ctx, draft)
	} else {
		_, err = c.client.CreateReview(ctx, draft)
	}
	if err != nil {
		return err
	}

	sel.ClearEditTarget(state.KindReview)
	return c.refreshReviewsLast(ctx)
}

// LikeFilm registers the active user's like and re-fetches films so the
// server-computed like counts stay authoritative.
func (c *Controller) LikeFilm(ctx context.Context, filmID int64, sel *state.Selection) error {
	userID, ok := sel.ActiveUser()
	if !ok {
		return ErrNoActiveUser
	}
	if err := c.client.LikeFilm(ctx, filmID, userID); err != nil {
		return err
	}
	return c.RefreshFilms(ctx)
}

// UnlikeFilm withdraws the active user's like.
func (c *Controller) UnlikeFilm(ctx context.Context, filmID int64, sel *state.Selection) error {
	userID, ok := sel.ActiveUser()
	if !ok {
		return ErrNoActiveUser
	}
	if err := c.client.UnlikeFilm(ctx, filmID, userID); err != nil {
		return err
	}
	return c.RefreshFilms(ctx)
}

// AddFriend adds friendID to the active user's friend list.
func (c *Controller) AddFriend(ctx context.Context, friendID int64, sel *state.Selection) error {
	userID, ok := sel.ActiveUser()
	if !ok {
		return ErrNoActiveUser
	}
	if friendID == userID {
		return ErrSelfFriend
	}
	if err := c.client.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}
	return c.RefreshFriends(ctx, sel)
}

// Vote identifies a review vote action.
type Vote int

const (
	VoteLike Vote = iota
	VoteDislike
	VoteRetractLike
	VoteRetractDislike
)

// VoteReview records the active user's vote on a review, then re-fetches
// the review window so the server-computed useful score is shown.
func (c *Controller) VoteReview(ctx context.Context, reviewID int64, vote Vote, sel *state.Selection) error {
	userID, ok := sel.ActiveUser()
	if !ok {
		return ErrNoActiveUser
	}
	var err error
	switch vote {
	case VoteLike:
		err = c.client.LikeReview(ctx, reviewID, userID)
	case VoteDislike:
		err = c.client.DislikeReview(ctx, reviewID, userID)
	case VoteRetractLike:
		err = c.client.UnlikeReview(ctx, reviewID, userID)
	case VoteRetractDislike:
		err = c.client.UndislikeReview(ctx, reviewID, userID)
	default:
		return fmt.Errorf("unknown vote %d", vote)
	}
	if err != nil {
		return err
	}
	return c.refreshReviewsLast(ctx)
}
