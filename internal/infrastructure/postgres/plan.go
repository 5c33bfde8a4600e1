package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hszk-dev/mediahub/internal/domain/query"
)

// selectBuilder renders a query.Plan as a parameterised SELECT. Only fields
// present in columns may appear in the statement.
type selectBuilder struct {
	table   string
	list    string
	columns map[string]string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (b selectBuilder) build(plan query.Plan) (string, []any, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString("SELECT ")
	sb.WriteString(b.list)
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	if pred, ok := plan.Filter(); ok {
		where, err := b.predicate(pred, &args)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	if s, ok := plan.Sort(); ok {
		col, err := b.column(s.Field)
		if err != nil {
			return "", nil, err
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s, id ASC", col, dir)
	}

	if n := plan.Take(); n > 0 {
		args = append(args, n)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	if n := plan.Skip(); n > 0 {
		args = append(args, n)
		sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
	}

	return sb.String(), args, nil
}

func (b selectBuilder) predicate(pred query.Predicate, args *[]any) (string, error) {
	switch p := pred.(type) {
	case query.Eq:
		col, err := b.column(p.Field)
		if err != nil {
			return "", err
		}
		*args = append(*args, p.Value)
		return col + " = $" + strconv.Itoa(len(*args)), nil
	case query.ContainsFold:
		col, err := b.column(p.Field)
		if err != nil {
			return "", err
		}
		*args = append(*args, "%"+likeEscaper.Replace(p.Text)+"%")
		return col + " ILIKE $" + strconv.Itoa(len(*args)) + ` ESCAPE '\'`, nil
	case query.And:
		return b.join(p, " AND ", args)
	case query.Or:
		return b.join(p, " OR ", args)
	}
	return "", fmt.Errorf("unsupported predicate %T", pred)
}

func (b selectBuilder) join(preds []query.Predicate, sep string, args *[]any) (string, error) {
	parts := make([]string, 0, len(preds))
	for _, sub := range preds {
		s, err := b.predicate(sub, args)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func (b selectBuilder) column(field string) (string, error) {
	col, ok := b.columns[field]
	if !ok {
		return "", fmt.Errorf("field %q is not queryable on %s", field, b.table)
	}
	return col, nil
}
