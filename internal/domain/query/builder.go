package query

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// maxPage keeps (page-1)*limit far away from integer overflow.
	maxPage = 1_000_000
)

// Page is a validated page request. Page and Limit are always >= 1.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of records to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Limits bounds page sizes.
type Limits struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultLimits returns the default page size bounds.
func DefaultLimits() Limits {
	return Limits{DefaultLimit: DefaultLimit, MaxLimit: MaxLimit}
}

// ParsePage coerces raw page and limit values into a Page.
// Absent or non-numeric values fall back to the defaults, fractional values are
// truncated and anything below 1 is clamped to 1.
func ParsePage(pageRaw, limitRaw string, limits Limits) Page {
	if limits.DefaultLimit < 1 {
		limits.DefaultLimit = DefaultLimit
	}
	if limits.MaxLimit < 1 {
		limits.MaxLimit = MaxLimit
	}

	page := coerceInt(pageRaw, DefaultPage)
	limit := coerceInt(limitRaw, limits.DefaultLimit)

	return NewPage(page, limit, limits)
}

// NewPage clamps page and limit into their valid ranges.
func NewPage(page, limit int, limits Limits) Page {
	if limits.MaxLimit < 1 {
		limits.MaxLimit = MaxLimit
	}
	page = min(max(page, 1), maxPage)
	limit = min(max(limit, 1), limits.MaxLimit)
	return Page{Number: page, Limit: limit}
}

func coerceInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != f { // NaN
		return fallback
	}
	switch {
	case f > float64(maxPage)*MaxLimit:
		return maxPage * MaxLimit
	case f < -float64(maxPage)*MaxLimit:
		return -maxPage * MaxLimit
	}
	return int(f)
}

// SortSpec is the set of sortable fields of an entity.
type SortSpec struct {
	Allowed []string
	Default string
}

// FeedParams are the caller-supplied paging, search and filter options.
type FeedParams struct {
	Page          Page
	Query         string
	SortField     string
	SortDirection string
	Owner         uuid.UUID
	// Scope holds extra equality constraints, e.g. the video of a comment list.
	Scope []Eq
}

// Builder turns FeedParams into a Plan for one entity.
type Builder struct {
	sort         SortSpec
	searchFields []string
}

// NewBuilder creates a Builder. searchFields are matched by FeedParams.Query.
func NewBuilder(sort SortSpec, searchFields ...string) Builder {
	if sort.Default == "" {
		sort.Default = FieldCreatedAt
	}
	return Builder{sort: sort, searchFields: searchFields}
}

// Build produces filter -> sort -> skip -> take. The filter stage is emitted
// only when there is something to filter on.
func (b Builder) Build(p FeedParams) Plan {
	if p.Page.Number < 1 || p.Page.Limit < 1 {
		p.Page = NewPage(p.Page.Number, p.Page.Limit, DefaultLimits())
	}

	stages := make([]Stage, 0, 4)
	if pred := b.predicate(p); pred != nil {
		stages = append(stages, FilterStage{Predicate: pred})
	}
	stages = append(stages,
		b.sortStage(p.SortField, p.SortDirection),
		SkipStage{N: p.Page.Offset()},
		TakeStage{N: p.Page.Limit},
	)
	return Plan{Stages: stages}
}

func (b Builder) predicate(p FeedParams) Predicate {
	var terms And

	for _, eq := range p.Scope {
		terms = append(terms, eq)
	}

	if q := strings.TrimSpace(p.Query); q != "" && len(b.searchFields) > 0 {
		search := make(Or, 0, len(b.searchFields))
		for _, f := range b.searchFields {
			search = append(search, ContainsFold{Field: f, Text: q})
		}
		terms = append(terms, search)
	}

	if p.Owner != uuid.Nil {
		terms = append(terms, Eq{Field: FieldOwner, Value: p.Owner})
	}

	switch len(terms) {
	case 0:
		return nil
	case 1:
		return terms[0]
	default:
		return terms
	}
}

func (b Builder) sortStage(field, direction string) SortStage {
	if !slices.Contains(b.sort.Allowed, field) {
		field = b.sort.Default
	}
	return SortStage{Field: field, Desc: direction == "desc"}
}

// Entity builders.
var (
	VideoFeed = NewBuilder(SortSpec{
		Allowed: []string{FieldTitle, FieldDescription, FieldDuration, FieldIsPublished, FieldCreatedAt, FieldUpdatedAt},
		Default: FieldCreatedAt,
	}, FieldTitle, FieldDescription)

	CommentFeed = NewBuilder(SortSpec{
		Allowed: []string{FieldCreatedAt, FieldUpdatedAt},
		Default: FieldCreatedAt,
	})
)
