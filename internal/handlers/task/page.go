package task

import (
	"net/url"
	"tasktracker/internal/domains/task/model"
	"tasktracker/internal/domains/task/model/dto"
	"tasktracker/shared/constant"
)

const (
	modeCreate = "Create"
	modeUpdate = "Update"
)

type option struct {
	Value string
	Label string
}

type listPage struct {
	Tasks       []dto.TaskResponse
	Total       int
	Query       dto.ListQuery
	Statuses    []option
	Priorities  []option
	SortOptions []option
	SortLinks   map[string]string
}

type formPage struct {
	Mode       string
	Action     string
	Form       dto.TaskForm
	Errors     dto.FieldErrors
	Priorities []option
	DateHint   string
}

type confirmDeletePage struct {
	Task dto.TaskResponse
}

var statusOptions = []option{
	{Value: constant.FilterAll, Label: "All tasks"},
	{Value: constant.FilterStatusOpen, Label: "Open"},
	{Value: constant.FilterStatusDone, Label: "Done"},
}

var sortOptions = []option{
	{Value: model.FieldCreatedAt, Label: "Oldest first"},
	{Value: constant.SortDescPrefix + model.FieldCreatedAt, Label: "Newest first"},
	{Value: model.FieldDueDate, Label: "Due date, earliest first"},
	{Value: constant.SortDescPrefix + model.FieldDueDate, Label: "Due date, latest first"},
	{Value: model.FieldPriority, Label: "Priority, low to high"},
	{Value: constant.SortDescPrefix + model.FieldPriority, Label: "Priority, high to low"},
	{Value: model.FieldTitle, Label: "Title, A to Z"},
	{Value: constant.SortDescPrefix + model.FieldTitle, Label: "Title, Z to A"},
	{Value: model.FieldCompleted, Label: "Open first"},
	{Value: constant.SortDescPrefix + model.FieldCompleted, Label: "Done first"},
}

var sortableColumns = []string{
	model.FieldTitle,
	model.FieldPriority,
	model.FieldDueDate,
	model.FieldCreatedAt,
	model.FieldCompleted,
}

func priorityOptions() []option {
	options := make([]option, 0, len(model.Priorities()))

	for _, priority := range model.Priorities() {
		options = append(options, option{Value: priority.String(), Label: priority.Label()})
	}

	return options
}

func newListPage(res dto.TaskListResponse) listPage {
	return listPage{
		Tasks:       res.Tasks,
		Total:       res.TotalData,
		Query:       res.Query,
		Statuses:    statusOptions,
		Priorities:  priorityOptions(),
		SortOptions: sortOptions,
		SortLinks:   sortLinks(res.Query),
	}
}

func newFormPage(mode, action string, form dto.TaskForm, errs dto.FieldErrors) formPage {
	if errs == nil {
		errs = dto.FieldErrors{}
	}

	return formPage{
		Mode:       mode,
		Action:     action,
		Form:       form,
		Errors:     errs,
		Priorities: priorityOptions(),
		DateHint:   constant.DateInputHint,
	}
}

// sortLinks builds one link per sortable column that keeps the current
// filters. Clicking the column already sorted ascending flips it.
func sortLinks(query dto.ListQuery) map[string]string {
	links := make(map[string]string, len(sortableColumns))

	for _, column := range sortableColumns {
		sort := column
		if query.Sort == column {
			sort = constant.SortDescPrefix + column
		}

		values := url.Values{}
		if query.Q != "" {
			values.Set(constant.RequestParamQuery, query.Q)
		}

		values.Set(constant.RequestParamStatus, query.Status)
		values.Set(constant.RequestParamPriority, query.Priority)
		values.Set(constant.RequestParamSort, sort)

		links[column] = "/?" + values.Encode()
	}

	return links
}
