package filmorate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ServiceClient defines the operations the sync controller needs from the
// film service. Implemented by *Client; fake implementations back the tests.
type ServiceClient interface {
	Films(ctx context.Context) ([]Film, error)
	Film(ctx context.Context, id int64) (*Film, error)
	PopularFilms(ctx context.Context, count int) ([]Film, error)
	CreateFilm(ctx context.Context, draft FilmDraft) (*Film, error)
	UpdateFilm(ctx context.Context, draft FilmDraft) (*Film, error)
	DeleteFilm(ctx context.Context, id int64) error
	LikeFilm(ctx context.Context, filmID, userID int64) error
	UnlikeFilm(ctx context.Context, filmID, userID int64) error

	Users(ctx context.Context) ([]User, error)
	User(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, draft UserDraft) (*User, error)
	UpdateUser(ctx context.Context, draft UserDraft) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
	Friends(ctx context.Context, userID int64) ([]User, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	Recommendations(ctx context.Context, userID int64) ([]Film, error)
	Feed(ctx context.Context, userID int64) ([]FeedEvent, error)

	Genres(ctx context.Context) ([]Genre, error)
	MpaRatings(ctx context.Context) ([]MpaRating, error)

	Reviews(ctx context.Context, filmID int64, count int) ([]Review, error)
	Review(ctx context.Context, id int64) (*Review, error)
	CreateReview(ctx context.Context, draft ReviewDraft) (*Review, error)
	UpdateReview(ctx context.Context, draft ReviewDraft) (*Review, error)
	DeleteReview(ctx context.Context, id int64) error
	LikeReview(ctx context.Context, reviewID, userID int64) error
	DislikeReview(ctx context.Context, reviewID, userID int64) error
	UnlikeReview(ctx context.Context, reviewID, userID int64) error
	UndislikeReview(ctx context.Context, reviewID, userID int64) error
}

// Ensure Client implements ServiceClient at compile time.
var _ ServiceClient = (*Client)(nil)

// Client talks to the film service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://127.0.0.1:8080"
	defaultUserAgent = "reeler/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given base URL. The URL may carry a
// path prefix ("/api") when the service is deployed behind one.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Films retrieves the full film collection.
func (c *Client) Films(ctx context.Context) ([]Film, error) {
	var films []Film
	if err := c.do(ctx, http.MethodGet, "list films", nil, &films, "films"); err != nil {
		return nil, err
	}
	return films, nil
}

// Film retrieves a single film by id.
func (c *Client) Film(ctx context.Context, id int64) (*Film, error) {
	var film Film
	if err := c.do(ctx, http.MethodGet, "get film", nil, &film, "films", itoa(id)); err != nil {
		return nil, err
	}
	return &film, nil
}

// PopularFilms retrieves the count most-liked films.
func (c *Client) PopularFilms(ctx context.Context, count int) ([]Film, error) {
	rel := c.baseURL.JoinPath("films", "popular")
	values := url.Values{}
	if count > 0 {
		values.Set("count", strconv.Itoa(count))
	}
	rel.RawQuery = values.Encode()
	var films []Film
	if err := c.doURL(ctx, http.MethodGet, "list popular films", rel, nil, &films); err != nil {
		return nil, err
	}
	return films, nil
}

// CreateFilm submits a new film. The outbound payload never carries an id.
func (c *Client) CreateFilm(ctx context.Context, draft FilmDraft) (*Film, error) {
	payload := draft.payload()
	payload.ID = 0
	var film Film
	if err := c.do(ctx, http.MethodPost, "create film", payload, &film, "films"); err != nil {
		return nil, err
	}
	return &film, nil
}

// UpdateFilm submits changes to an existing film, identified by the id
// attached to the payload.
func (c *Client) UpdateFilm(ctx context.Context, draft FilmDraft) (*Film, error) {
	if draft.ID == 0 {
		return nil, fmt.Errorf("update film: id required")
	}
	var film Film
	if err := c.do(ctx, http.MethodPut, "update film", draft.payload(), &film, "films"); err != nil {
		return nil, err
	}
	return &film, nil
}

// DeleteFilm removes a film.
func (c *Client) DeleteFilm(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "delete film", nil, nil, "films", itoa(id))
}

// LikeFilm registers userID's like on a film.
func (c *Client) LikeFilm(ctx context.Context, filmID, userID int64) error {
	return c.do(ctx, http.MethodPut, "like film", nil, nil, "films", itoa(filmID), "like", itoa(userID))
}

// UnlikeFilm withdraws userID's like from a film.
func (c *Client) UnlikeFilm(ctx context.Context, filmID, userID int64) error {
	return c.do(ctx, http.MethodDelete, "unlike film", nil, nil, "films", itoa(filmID), "like", itoa(userID))
}

// Users retrieves the full user collection.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "list users", nil, &users, "users"); err != nil {
		return nil, err
	}
	return users, nil
}

// User retrieves a single user by id.
func (c *Client) User(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "get user", nil, &user, "users", itoa(id)); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser submits a new user.
func (c *Client) CreateUser(ctx context.Context, draft UserDraft) (*User, error) {
	payload := draft.payload()
	payload.ID = 0
	var user User
	if err := c.do(ctx, http.MethodPost, "create user", payload, &user, "users"); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser submits changes to an existing user.
func (c *Client) UpdateUser(ctx context.Context, draft UserDraft) (*User, error) {
	if draft.ID == 0 {
		return nil, fmt.Errorf("update user: id required")
	}
	var user User
	if err := c.do(ctx, http.MethodPut, "update user", draft.payload(), &user, "users"); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "delete user", nil, nil, "users", itoa(id))
}

// Friends retrieves a user's friend list.
func (c *Client) Friends(ctx context.Context, userID int64) ([]User, error) {
	var friends []User
	if err := c.do(ctx, http.MethodGet, "list friends", nil, &friends, "users", itoa(userID), "friends"); err != nil {
		return nil, err
	}
	return friends, nil
}

// AddFriend records a directed friendship from userID to friendID.
func (c *Client) AddFriend(ctx context.Context, userID, friendID int64) error {
	return c.do(ctx, http.MethodPut, "add friend", nil, nil, "users", itoa(userID), "friends", itoa(friendID))
}

// RemoveFriend removes friendID from userID's friend list.
func (c *Client) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return c.do(ctx, http.MethodDelete, "remove friend", nil, nil, "users", itoa(userID), "friends", itoa(friendID))
}

// Recommendations retrieves films the service recommends for a user.
func (c *Client) Recommendations(ctx context.Context, userID int64) ([]Film, error) {
	var films []Film
	if err := c.do(ctx, http.MethodGet, "list recommendations", nil, &films, "users", itoa(userID), "recommendations"); err != nil {
		return nil, err
	}
	return films, nil
}

// Feed retrieves a user's activity feed.
func (c *Client) Feed(ctx context.Context, userID int64) ([]FeedEvent, error) {
	var events []FeedEvent
	if err := c.do(ctx, http.MethodGet, "load feed", nil, &events, "users", itoa(userID), "feed"); err != nil {
		return nil, err
	}
	return events, nil
}

// Genres retrieves the genre reference data.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var genres []Genre
	if err := c.do(ctx, http.MethodGet, "list genres", nil, &genres, "genres"); err != nil {
		return nil, err
	}
	return genres, nil
}

// MpaRatings retrieves the MPA rating reference data.
func (c *Client) MpaRatings(ctx context.Context) ([]MpaRating, error) {
	var ratings []MpaRating
	if err := c.do(ctx, http.MethodGet, "list mpa ratings", nil, &ratings, "mpa"); err != nil {
		return nil, err
	}
	return ratings, nil
}

// Reviews retrieves reviews, optionally limited to one film. A zero filmID
// requests reviews across all films; the service defaults count to 10.
func (c *Client) Reviews(ctx context.Context, filmID int64, count int) ([]Review, error) {
	rel := c.baseURL.JoinPath("reviews")
	values := url.Values{}
	if filmID > 0 {
		values.Set("filmId", itoa(filmID))
	}
	if count > 0 {
		values.Set("count", strconv.Itoa(count))
	}
	rel.RawQuery = values.Encode()
	var reviews []Review
	if err := c.doURL(ctx, http.MethodGet, "list reviews", rel, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Review retrieves a single review by id.
func (c *Client) Review(ctx context.Context, id int64) (*Review, error) {
	var review Review
	if err := c.do(ctx, http.MethodGet, "get review", nil, &review, "reviews", itoa(id)); err != nil {
		return nil, err
	}
	return &review, nil
}

// CreateReview submits a new review.
func (c *Client) CreateReview(ctx context.Context, draft ReviewDraft) (*Review, error) {
	payload := draft.payload()
	payload.ReviewID = 0
	var review Review
	if err := c.do(ctx, http.MethodPost, "create review", payload, &review, "reviews"); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview submits changes to an existing review.
func (c *Client) UpdateReview(ctx context.Context, draft ReviewDraft) (*Review, error) {
	if draft.ReviewID == 0 {
		return nil, fmt.Errorf("update review: id required")
	}
	var review Review
	if err := c.do(ctx, http.MethodPut, "update review", draft.payload(), &review, "reviews"); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "delete review", nil, nil, "reviews", itoa(id))
}

// LikeReview registers a useful vote on a review.
func (c *Client) LikeReview(ctx context.Context, reviewID, userID int64) error {
	return c.do(ctx, http.MethodPut, "like review", nil, nil, "reviews", itoa(reviewID), "like", itoa(userID))
}

// DislikeReview registers a not-useful vote on a review.
func (c *Client) DislikeReview(ctx context.Context, reviewID, userID int64) error {
	return c.do(ctx, http.MethodPut, "dislike review", nil, nil, "reviews", itoa(reviewID), "dislike", itoa(userID))
}

// UnlikeReview withdraws a useful vote.
func (c *Client) UnlikeReview(ctx context.Context, reviewID, userID int64) error {
	return c.do(ctx, http.MethodDelete, "unlike review", nil, nil, "reviews", itoa(reviewID), "like", itoa(userID))
}

// UndislikeReview withdraws a not-useful vote.
func (c *Client) UndislikeReview(ctx context.Context, reviewID, userID int64) error {
	return c.do(ctx, http.MethodDelete, "undislike review", nil, nil, "reviews", itoa(reviewID), "dislike", itoa(userID))
}

func (c *Client) do(ctx context.Context, method, op string, body, dest any, elem ...string) error {
	return c.doURL(ctx, method, op, c.baseURL.JoinPath(elem...), body, dest)
}

func (c *Client) doURL(ctx context.Context, method, op string, reqURL *url.URL, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.apiError(resp, op)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError decodes the structured error body when the service sent one and
// otherwise falls back to a generic message for the attempted operation.
func (c *Client) apiError(resp *http.Response, op string) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: op + " failed"}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if msg := body.message(); msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
