// Package query describes store-independent read plans.
//
// A Plan is an ordered list of typed stages (filter, sort, skip, take) built by
// pure functions and interpreted by each store adapter: the MongoDB adapter
// turns it into an aggregation pipeline, the PostgreSQL adapter into a SELECT,
// the memory adapter evaluates it in process.
package query

// Logical field names shared by every store adapter.
const (
	FieldID          = "id"
	FieldOwner       = "owner"
	FieldVideo       = "video"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldIsPublished = "isPublished"
	FieldContent     = "content"
	FieldName        = "name"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// Predicate is a boolean condition over a record.
type Predicate interface {
	predicate()
}

// Eq matches records whose Field equals Value.
type Eq struct {
	Field string
	Value any
}

// ContainsFold matches records whose Field contains Text, ignoring case.
// Text is a literal, never a pattern.
type ContainsFold struct {
	Field string
	Text  string
}

// And matches when every member matches.
type And []Predicate

// Or matches when at least one member matches.
type Or []Predicate

func (Eq) predicate()           {}
func (ContainsFold) predicate() {}
func (And) predicate()          {}
func (Or) predicate()           {}

// Stage is one step of a Plan.
type Stage interface {
	stage()
}

type FilterStage struct {
	Predicate Predicate
}

type SortStage struct {
	Field string
	Desc  bool
}

type SkipStage struct {
	N int
}

type TakeStage struct {
	N int
}

func (FilterStage) stage() {}
func (SortStage) stage()   {}
func (SkipStage) stage()   {}
func (TakeStage) stage()   {}

// Plan is an ordered list of stages.
type Plan struct {
	Stages []Stage
}

// Filter returns the predicate of the first filter stage, if any.
func (p Plan) Filter() (Predicate, bool) {
	for _, s := range p.Stages {
		if f, ok := s.(FilterStage); ok {
			return f.Predicate, true
		}
	}
	return nil, false
}

// Sort returns the first sort stage, if any.
func (p Plan) Sort() (SortStage, bool) {
	for _, s := range p.Stages {
		if st, ok := s.(SortStage); ok {
			return st, true
		}
	}
	return SortStage{}, false
}

// Skip returns the number of records skipped by the plan.
func (p Plan) Skip() int {
	for _, s := range p.Stages {
		if st, ok := s.(SkipStage); ok {
			return st.N
		}
	}
	return 0
}

// Take returns the maximum number of records the plan yields, or 0 for no limit.
func (p Plan) Take() int {
	for _, s := range p.Stages {
		if st, ok := s.(TakeStage); ok {
			return st.N
		}
	}
	return 0
}
