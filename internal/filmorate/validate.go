package filmorate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// FilmDraft is the client-side editable form of a film. A zero ID means
// the draft creates a new film; a non-zero ID routes to an update.
type FilmDraft struct {
	ID          int64
	Name        string `validate:"required"`
	Description string `validate:"max=200"`
	ReleaseDate string `validate:"required,datetime=2006-01-02"`
	Duration    int    `validate:"required,gt=0"`
	MpaID       int64
	GenreIDs    []int64
}

// UserDraft is the client-side editable form of a user.
type UserDraft struct {
	ID       int64
	Email    string `validate:"required,email"`
	Login    string `validate:"required,excludesall=0x20"`
	Name     string
	Birthday string `validate:"omitempty,datetime=2006-01-02"`
}

// ReviewDraft is the client-side editable form of a review.
type ReviewDraft struct {
	ReviewID   int64
	Content    string `validate:"required"`
	IsPositive bool
	UserID     int64 `validate:"required"`
	FilmID     int64 `validate:"required"`
}

// CheckFilm validates a film draft before any request is issued. The
// release-date floor is the one rule validator tags cannot express.
func CheckFilm(draft FilmDraft) error {
	violations := structViolations(draft)
	if draft.ReleaseDate != "" {
		if date, err := time.Parse(dateLayout, draft.ReleaseDate); err == nil && date.Before(EarliestReleaseDate) {
			violations = append(violations, "releaseDate: must be on or after 1895-12-28")
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// CheckUser validates a user draft before any request is issued.
func CheckUser(draft UserDraft) error {
	violations := structViolations(draft)
	if draft.Birthday != "" {
		if date, err := time.Parse(dateLayout, draft.Birthday); err == nil && !date.Before(time.Now()) {
			violations = append(violations, "birthday: cannot be in the future")
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// CheckReview validates a review draft before any request is issued.
func CheckReview(draft ReviewDraft) error {
	if violations := structViolations(draft); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func structViolations(draft any) []string {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, violationMessage(fe))
	}
	return violations
}

// violationMessage phrases a field error the way the service phrases its
// own constraint violations.
func violationMessage(fe validator.FieldError) string {
	field := wireFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + ": cannot be blank or empty"
	case "max":
		return fmt.Sprintf("%s: cannot be longer than %s characters", field, fe.Param())
	case "gt":
		return field + ": must be positive"
	case "email":
		return field + ": invalid e-mail format"
	case "excludesall":
		return field + ": cannot contain spaces"
	case "datetime":
		return field + ": expected date in YYYY-MM-DD form"
	default:
		return field + ": invalid value"
	}
}

// wireFieldName lowercases the leading rune so messages reference the JSON
// field the operator typed, not the Go struct field.
func wireFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func (d FilmDraft) payload() filmPayload {
	p := filmPayload{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ReleaseDate: d.ReleaseDate,
		Duration:    d.Duration,
		Genres:      []entityRef{},
	}
	if d.MpaID > 0 {
		p.Mpa = &entityRef{ID: d.MpaID}
	}
	seen := make(map[int64]struct{}, len(d.GenreIDs))
	for _, id := range d.GenreIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		p.Genres = append(p.Genres, entityRef{ID: id})
	}
	sort.Slice(p.Genres, func(i, j int) bool { return p.Genres[i].ID < p.Genres[j].ID })
	return p
}

func (d UserDraft) payload() userPayload {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = d.Login
	}
	return userPayload{
		ID:       d.ID,
		Email:    d.Email,
		Login:    d.Login,
		Name:     name,
		Birthday: d.Birthday,
	}
}

func (d ReviewDraft) payload() reviewPayload {
	return reviewPayload{
		ReviewID:   d.ReviewID,
		Content:    d.Content,
		IsPositive: d.IsPositive,
		UserID:     d.UserID,
		FilmID:     d.FilmID,
	}
}
