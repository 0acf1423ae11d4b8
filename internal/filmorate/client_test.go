package filmorate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("url = %q, want default %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http added to bare host", u.Scheme)
	}

	u, err = parseBaseURL("http://example.com/api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/api" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotPopularQuery url.Values
	var gotReviewsQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/films":
			_ = json.NewEncoder(w).Encode([]Film{{ID: 1, Name: "Alien"}})
		case "/films/popular":
			gotPopularQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode([]Film{{ID: 2, Name: "Dune"}})
		case "/reviews":
			gotReviewsQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode([]Review{{ReviewID: 5, Content: "great", FilmID: 7}})
		case "/users/3/feed":
			_ = json.NewEncoder(w).Encode([]FeedEvent{{EventID: 9, EventType: EventLike, Operation: OpAdd}})
		case "/genres":
			_ = json.NewEncoder(w).Encode([]Genre{{ID: 1, Name: "Comedy"}})
		case "/mpa":
			_ = json.NewEncoder(w).Encode([]MpaRating{{ID: 1, Name: "G"}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	films, err := c.Films(ctx)
	if err != nil {
		t.Fatalf("Films returned error: %v", err)
	}
	if len(films) != 1 || films[0].Name != "Alien" {
		t.Fatalf("Films = %+v, want one film Alien", films)
	}

	if _, err := c.PopularFilms(ctx, 25); err != nil {
		t.Fatalf("PopularFilms returned error: %v", err)
	}
	if got := gotPopularQuery.Get("count"); got != "25" {
		t.Fatalf("popular count query = %q, want 25", got)
	}

	if _, err := c.Reviews(ctx, 7, 5); err != nil {
		t.Fatalf("Reviews returned error: %v", err)
	}
	if got := gotReviewsQuery.Get("filmId"); got != "7" {
		t.Fatalf("reviews filmId query = %q, want 7", got)
	}
	if got := gotReviewsQuery.Get("count"); got != "5" {
		t.Fatalf("reviews count query = %q, want 5", got)
	}

	if _, err := c.Feed(ctx, 3); err != nil {
		t.Fatalf("Feed returned error: %v", err)
	}
	if _, err := c.Genres(ctx); err != nil {
		t.Fatalf("Genres returned error: %v", err)
	}
	if _, err := c.MpaRatings(ctx); err != nil {
		t.Fatalf("MpaRatings returned error: %v", err)
	}

	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
}

func TestClient_ReviewsOmitsEmptyQueryParams(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]Review{})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := c.Reviews(context.Background(), 0, 0); err != nil {
		t.Fatalf("Reviews returned error: %v", err)
	}
	if gotQuery.Has("filmId") || gotQuery.Has("count") {
		t.Fatalf("query = %v, want no params for unfiltered reviews", gotQuery)
	}
}

func TestClient_CreateOmitsIDAndUpdateCarriesIt(t *testing.T) {
	t.Parallel()

	var created, updated map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch r.Method {
		case http.MethodPost:
			created = body
		case http.MethodPut:
			updated = body
		}
		_ = json.NewEncoder(w).Encode(Film{ID: 10, Name: "Alien"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	draft := FilmDraft{
		Name:        "Alien",
		ReleaseDate: "1979-05-25",
		Duration:    117,
		MpaID:       4,
		GenreIDs:    []int64{6, 1, 6},
	}
	if _, err := c.CreateFilm(context.Background(), draft); err != nil {
		t.Fatalf("CreateFilm returned error: %v", err)
	}
	if _, has := created["id"]; has {
		t.Fatalf("create payload carries id: %v", created)
	}
	genres, ok := created["genres"].([]any)
	if !ok || len(genres) != 2 {
		t.Fatalf("create payload genres = %v, want 2 deduplicated refs", created["genres"])
	}

	draft.ID = 10
	if _, err := c.UpdateFilm(context.Background(), draft); err != nil {
		t.Fatalf("UpdateFilm returned error: %v", err)
	}
	if got, ok := updated["id"].(float64); !ok || int64(got) != 10 {
		t.Fatalf("update payload id = %v, want 10", updated["id"])
	}
}

func TestClient_UpdateWithoutIDFailsLocally(t *testing.T) {
	t.Parallel()

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := c.UpdateFilm(context.Background(), FilmDraft{Name: "x"}); err == nil {
		t.Fatal("UpdateFilm accepted a zero id")
	}
	if _, err := c.UpdateUser(context.Background(), UserDraft{Login: "x"}); err == nil {
		t.Fatal("UpdateUser accepted a zero id")
	}
	if _, err := c.UpdateReview(context.Background(), ReviewDraft{Content: "x"}); err == nil {
		t.Fatal("UpdateReview accepted a zero id")
	}
	if requests != 0 {
		t.Fatalf("requests = %d, want 0 for local id checks", requests)
	}
}

func TestClient_DecodesNotFoundErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":       "not found",
			"description": "film with id 99 not found",
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Film(context.Background(), 99)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", apiErr.Status)
	}
	if apiErr.Message != "film with id 99 not found" {
		t.Fatalf("Message = %q, want the description field", apiErr.Message)
	}
}

func TestClient_DecodesViolationsErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"violations":[{"fieldName":"name","message":"cannot be blank"}]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.CreateFilm(context.Background(), FilmDraft{Name: "x", ReleaseDate: "2000-01-01", Duration: 1})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "name: cannot be blank" {
		t.Fatalf("Message = %q, want the violation text", apiErr.Message)
	}
}

func TestClient_UnreadableErrorBodyFallsBackToOperation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.DeleteFilm(context.Background(), 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "delete film failed" {
		t.Fatalf("Message = %q, want operation fallback", apiErr.Message)
	}
}

func TestClient_KeepsBaseURLPathPrefix(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]Film{})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api/")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Films(context.Background()); err != nil {
		t.Fatalf("Films returned error: %v", err)
	}
	if gotPath != "/api/films" {
		t.Fatalf("request path = %q, want /api/films", gotPath)
	}
}
