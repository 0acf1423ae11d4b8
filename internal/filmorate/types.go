package filmorate

import "time"

const dateLayout = "2006-01-02"

// EarliestReleaseDate is the oldest release date the service accepts: the
// date of the first public film screening.
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// Genre is immutable reference data attached to films.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MpaRating is immutable reference data classifying a film's audience.
type MpaRating struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Film mirrors the service's film resource.
type Film struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ReleaseDate string     `json:"releaseDate"`
	Duration    int        `json:"duration"`
	Mpa         *MpaRating `json:"mpa,omitempty"`
	Genres      []Genre    `json:"genres"`
	Likes       []int64    `json:"likes,omitempty"`
}

// ParsedReleaseDate returns the release date as time.Time when possible.
func (f Film) ParsedReleaseDate() time.Time {
	return parseDate(f.ReleaseDate)
}

// LikesCount returns the server-reported like count.
func (f Film) LikesCount() int {
	return len(f.Likes)
}

// User mirrors the service's user resource.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name,omitempty"`
	Birthday string `json:"birthday,omitempty"`
}

// DisplayName resolves the name the service would show: name when set,
// login otherwise.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// ParsedBirthday returns the birthday as time.Time when possible.
func (u User) ParsedBirthday() time.Time {
	return parseDate(u.Birthday)
}

// Review mirrors the service's review resource. Useful is the
// server-computed vote score and is never sent outbound.
type Review struct {
	ReviewID   int64  `json:"reviewId"`
	Content    string `json:"content"`
	IsPositive bool   `json:"isPositive"`
	UserID     int64  `json:"userId"`
	FilmID     int64  `json:"filmId"`
	Useful     int    `json:"useful"`
}

// Feed event types and operations as the service serializes them.
const (
	EventLike   = "LIKE"
	EventReview = "REVIEW"
	EventFriend = "FRIEND"

	OpAdd    = "ADD"
	OpRemove = "REMOVE"
	OpUpdate = "UPDATE"
)

// FeedEvent is an immutable record of a past user action, inbound only.
type FeedEvent struct {
	EventID   int64  `json:"eventId"`
	UserID    int64  `json:"userId"`
	EventType string `json:"eventType"`
	Operation string `json:"operation"`
	EntityID  int64  `json:"entityId"`
	Timestamp int64  `json:"timestamp"`
}

// Time returns the event timestamp, which the service encodes as epoch
// milliseconds.
func (e FeedEvent) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// entityRef is the id-only reference shape the service expects for nested
// mpa and genre fields on outbound film payloads.
type entityRef struct {
	ID int64 `json:"id"`
}

// filmPayload is the outbound film shape. Server-computed fields (likes)
// are omitted and nested entities are reduced to id references.
type filmPayload struct {
	ID          int64       `json:"id,omitempty"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	ReleaseDate string      `json:"releaseDate"`
	Duration    int         `json:"duration"`
	Mpa         *entityRef  `json:"mpa,omitempty"`
	Genres      []entityRef `json:"genres"`
}

// userPayload is the outbound user shape.
type userPayload struct {
	ID       int64  `json:"id,omitempty"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday,omitempty"`
}

// reviewPayload is the outbound review shape. Useful is server-owned.
type reviewPayload struct {
	ReviewID   int64  `json:"reviewId,omitempty"`
	Content    string `json:"content"`
	IsPositive bool   `json:"isPositive"`
	UserID     int64  `json:"userId"`
	FilmID     int64  `json:"filmId"`
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}
