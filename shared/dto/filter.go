package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq   = "eq"
	FilterOperatorLike = "like"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

const likeEscape = `\`

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

// EscapeLike makes value match literally inside a LIKE pattern.
func EscapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorLike:
		args[argName] = fmt.Sprintf("%%%s%%", EscapeLike(fmt.Sprintf("%v", f.Value)))

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ESCAPE '%s'", column, argName, likeEscape), args
	default:
		return "", args
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// Add appends a Filter or a nested FilterGroup.
func (f *FilterGroup) Add(filter any) {
	f.Filters = append(f.Filters, filter)
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)

		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
