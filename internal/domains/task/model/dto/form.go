package dto

import (
	"fmt"
	"net/http"
	"strings"
	"tasktracker/internal/domains/task/model"
	"tasktracker/shared/constant"
	"tasktracker/shared/timezone"
	"tasktracker/shared/validator"
	"time"
)

const (
	MessageInvalidDateFormat = "Invalid date format. Please use " + constant.DateInputHint
)

var (
	dueDateRule  = "omitempty,datetime=" + constant.DateInputFormat
	titleRule    = fmt.Sprintf("required,max=%d", model.TitleMaxLength)
	priorityRule = "oneof=" + joinPriorities()
)

// FieldErrors maps a form field to its messages.
type FieldErrors = validator.FieldErrors

// TaskForm is the raw create/edit form exactly as submitted.
type TaskForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
}

// FromRequest reads the form fields from a parsed POST body.
func (f *TaskForm) FromRequest(r *http.Request) {
	f.Title = r.PostFormValue(model.FieldTitle)
	f.Description = r.PostFormValue(model.FieldDescription)
	f.DueDate = r.PostFormValue(model.FieldDueDate)
	f.Priority = r.PostFormValue(model.FieldPriority)
}

// Validate checks every field and collects all failures. The returned
// request is only meaningful when the errors are empty.
func (f TaskForm) Validate() (TaskRequest, FieldErrors) {
	errs := FieldErrors{}
	req := TaskRequest{
		Description: strings.TrimSpace(f.Description),
		Priority:    model.DefaultPriority,
	}

	title := strings.TrimSpace(f.Title)
	if validator.Field(errs, model.FieldTitle, title, titleRule) {
		req.Title = title
	}

	dueDate := strings.TrimSpace(f.DueDate)
	if dueDate != "" && validator.FieldWithMessage(errs, model.FieldDueDate, dueDate, dueDateRule, MessageInvalidDateFormat) {
		parsed, err := timezone.ParseDate(constant.DateInputFormat, dueDate)
		if err != nil || parsed.Year() < 1 {
			errs.Add(model.FieldDueDate, MessageInvalidDateFormat)
		} else {
			req.DueDate = &parsed
		}
	}

	if f.Priority != "" && validator.Field(errs, model.FieldPriority, f.Priority, priorityRule) {
		req.Priority = model.Priority(f.Priority)
	}

	return req, errs
}

// TaskFormFromResponse pre-fills an edit form from a stored task.
func TaskFormFromResponse(res TaskResponse) TaskForm {
	return TaskForm{
		Title:       res.Title,
		Description: res.Description,
		DueDate:     res.DueDateText,
		Priority:    res.Priority.String(),
	}
}

// TaskRequest is a validated form.
type TaskRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	DueDate     *time.Time     `json:"due_date"`
	Priority    model.Priority `json:"priority"`
}

func (r TaskRequest) ToModel() model.Task {
	return model.Task{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Completed:   false,
		CreatedAt:   timezone.Now().UTC(),
	}
}

// ApplyTo merges the editable fields onto an existing task.
func (r TaskRequest) ApplyTo(task *model.Task) {
	task.Title = r.Title
	task.Description = r.Description
	task.DueDate = r.DueDate
	task.Priority = r.Priority
}

// UpdatedFields lists the columns an edit writes.
func UpdatedFields(task model.Task) map[string]any {
	return map[string]any{
		model.FieldTitle:       task.Title,
		model.FieldDescription: task.Description,
		model.FieldDueDate:     task.DueDate,
		model.FieldPriority:    task.Priority,
	}
}

func joinPriorities() string {
	codes := []string{}

	for _, priority := range model.Priorities() {
		codes = append(codes, priority.String())
	}

	return strings.Join(codes, " ")
}
