package dto

import (
	"fmt"
	"net/http"
	"strings"
	"tasktracker/internal/domains/task/model"
	"tasktracker/shared/constant"
	gDto "tasktracker/shared/dto"
)

const (
	argSearchTitle       = "q_title"
	argSearchDescription = "q_description"
)

// ListQuery holds the raw list parameters. Unknown values never fail: they
// simply do not filter, and an unknown sort falls back to creation order.
type ListQuery struct {
	Q        string `json:"q"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Sort     string `json:"sort"`
}

func (q *ListQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.Q = strings.TrimSpace(values.Get(constant.RequestParamQuery))
	q.Status = values.Get(constant.RequestParamStatus)
	q.Priority = values.Get(constant.RequestParamPriority)
	q.Sort = values.Get(constant.RequestParamSort)
}

// FilterGroup is the AND of every active filter.
func (q ListQuery) FilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search := strings.TrimSpace(q.Q); search != "" {
		group.Add(gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: argSearchTitle, Field: model.FieldTitle, Operator: gDto.FilterOperatorLike, Value: search},
				gDto.Filter{ArgName: argSearchDescription, Field: model.FieldDescription, Operator: gDto.FilterOperatorLike, Value: search},
			},
		})
	}

	switch q.Status {
	case constant.FilterStatusOpen:
		group.Add(gDto.Filter{Field: model.FieldCompleted, Operator: gDto.FilterOperatorEq, Value: false})
	case constant.FilterStatusDone:
		group.Add(gDto.Filter{Field: model.FieldCompleted, Operator: gDto.FilterOperatorEq, Value: true})
	}

	if priority, ok := model.ParsePriority(q.Priority); ok {
		group.Add(gDto.Filter{Field: model.FieldPriority, Operator: gDto.FilterOperatorEq, Value: priority})
	}

	return group
}

// QueryParams resolves the sort parameter to a column expression.
func (q ListQuery) QueryParams() gDto.QueryParams {
	field, desc := q.sortField()
	column, _ := sortColumn(field)

	dir := gDto.SortDirAsc
	if desc {
		dir = gDto.SortDirDesc
	}

	return gDto.QueryParams{SortBy: column, SortDir: dir}
}

// Resolved returns the state to echo back: "all" for absent filters and
// the effective sort after fallback.
func (q ListQuery) Resolved() ListQuery {
	resolved := ListQuery{
		Q:        strings.TrimSpace(q.Q),
		Status:   q.Status,
		Priority: q.Priority,
	}

	if resolved.Status == "" {
		resolved.Status = constant.FilterAll
	}

	if resolved.Priority == "" {
		resolved.Priority = constant.FilterAll
	}

	field, desc := q.sortField()
	if desc {
		field = constant.SortDescPrefix + field
	}

	resolved.Sort = field

	return resolved
}

func (q ListQuery) sortField() (string, bool) {
	field := q.Sort
	desc := strings.HasPrefix(field, constant.SortDescPrefix)

	if desc {
		field = strings.TrimPrefix(field, constant.SortDescPrefix)
	}

	if _, ok := sortColumn(field); !ok {
		return constant.DefaultValueSortBy, false
	}

	return field, desc
}

func sortColumn(field string) (string, bool) {
	switch field {
	case model.FieldCreatedAt:
		return model.FieldCreatedAt, true
	case model.FieldDueDate:
		return model.FieldDueDate, true
	case model.FieldPriority:
		return priorityRankColumn(), true
	case model.FieldCompleted:
		return model.FieldCompleted, true
	case model.FieldTitle:
		return model.FieldTitle, true
	default:
		return "", false
	}
}

func priorityRankColumn() string {
	var builder strings.Builder

	builder.WriteString("CASE " + model.FieldPriority)

	for _, priority := range model.Priorities() {
		fmt.Fprintf(&builder, " WHEN '%s' THEN %d", priority, priority.Rank())
	}

	builder.WriteString(" END")

	return builder.String()
}
