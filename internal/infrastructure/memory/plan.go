package memory

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/query"
)

// fieldFunc returns the value of a logical field of a row, or nil.
type fieldFunc[T any] func(row T, field string) any

// runPlan evaluates the stages of plan over rows, in order.
func runPlan[T any](rows []T, plan query.Plan, field fieldFunc[T]) []T {
	out := slices.Clone(rows)
	for _, stage := range plan.Stages {
		switch s := stage.(type) {
		case query.FilterStage:
			out = slices.DeleteFunc(out, func(r T) bool {
				return !match(s.Predicate, func(f string) any { return field(r, f) })
			})
		case query.SortStage:
			slices.SortStableFunc(out, func(a, b T) int {
				c := compareValues(field(a, s.Field), field(b, s.Field))
				if s.Desc {
					return -c
				}
				return c
			})
		case query.SkipStage:
			if s.N >= len(out) {
				out = out[:0]
			} else if s.N > 0 {
				out = out[s.N:]
			}
		case query.TakeStage:
			if s.N > 0 && s.N < len(out) {
				out = out[:s.N]
			}
		}
	}
	return out
}

func match(pred query.Predicate, get func(string) any) bool {
	switch p := pred.(type) {
	case query.Eq:
		return get(p.Field) == p.Value
	case query.ContainsFold:
		s, ok := get(p.Field).(string)
		return ok && strings.Contains(strings.ToLower(s), strings.ToLower(p.Text))
	case query.And:
		for _, sub := range p {
			if !match(sub, get) {
				return false
			}
		}
		return true
	case query.Or:
		for _, sub := range p {
			if match(sub, get) {
				return true
			}
		}
		return false
	}
	return false
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			}
			return 1
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case uuid.UUID:
		if y, ok := b.(uuid.UUID); ok {
			return strings.Compare(x.String(), y.String())
		}
	}
	return 0
}
