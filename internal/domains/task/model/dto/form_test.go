package dto_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"tasktracker/internal/domains/task/model"
	"tasktracker/internal/domains/task/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) *time.Time {
	value := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &value
}

func TestTaskForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		form       dto.TaskForm
		want       dto.TaskRequest
		wantErrors dto.FieldErrors
	}{
		{
			name: "minimal form defaults to low priority without due date",
			form: dto.TaskForm{Title: "Alpha"},
			want: dto.TaskRequest{Title: "Alpha", Priority: model.PriorityLow},
		},
		{
			name: "full form",
			form: dto.TaskForm{Title: "  Bravo  ", Description: " notes ", DueDate: "05/10/2025", Priority: "HIGH"},
			want: dto.TaskRequest{Title: "Bravo", Description: "notes", DueDate: date(2025, time.October, 5), Priority: model.PriorityHigh},
		},
		{
			name: "leap day",
			form: dto.TaskForm{Title: "Leap", DueDate: "29/02/2024", Priority: "MED"},
			want: dto.TaskRequest{Title: "Leap", DueDate: date(2024, time.February, 29), Priority: model.PriorityMedium},
		},
		{
			name:       "blank title",
			form:       dto.TaskForm{Title: "   "},
			wantErrors: dto.FieldErrors{"title": {"This field is required."}},
		},
		{
			name:       "title too long",
			form:       dto.TaskForm{Title: strings.Repeat("a", model.TitleMaxLength+1)},
			wantErrors: dto.FieldErrors{"title": {"Ensure this value has at most 200 characters."}},
		},
		{
			name:       "impossible date",
			form:       dto.TaskForm{Title: "Alpha", DueDate: "31/02/2025"},
			wantErrors: dto.FieldErrors{"due_date": {dto.MessageInvalidDateFormat}},
		},
		{
			name:       "year zero is rejected",
			form:       dto.TaskForm{Title: "Alpha", DueDate: "01/01/0000"},
			wantErrors: dto.FieldErrors{"due_date": {dto.MessageInvalidDateFormat}},
		},
		{
			name: "first year is accepted",
			form: dto.TaskForm{Title: "Alpha", DueDate: "01/01/0001"},
			want: dto.TaskRequest{Title: "Alpha", DueDate: date(1, time.January, 1), Priority: model.PriorityLow},
		},
		{
			name:       "iso date is rejected",
			form:       dto.TaskForm{Title: "Alpha", DueDate: "2025-10-05"},
			wantErrors: dto.FieldErrors{"due_date": {dto.MessageInvalidDateFormat}},
		},
		{
			name:       "single digit day is rejected",
			form:       dto.TaskForm{Title: "Alpha", DueDate: "5/10/2025"},
			wantErrors: dto.FieldErrors{"due_date": {dto.MessageInvalidDateFormat}},
		},
		{
			name:       "unknown priority",
			form:       dto.TaskForm{Title: "Alpha", Priority: "URGENT"},
			wantErrors: dto.FieldErrors{"priority": {"Select a valid choice. URGENT is not one of the available choices."}},
		},
		{
			name:       "priority label is not a code",
			form:       dto.TaskForm{Title: "Alpha", Priority: "Medium"},
			wantErrors: dto.FieldErrors{"priority": {"Select a valid choice. Medium is not one of the available choices."}},
		},
		{
			name: "every error is reported at once",
			form: dto.TaskForm{Title: "", DueDate: "2025/10/05", Priority: "low"},
			wantErrors: dto.FieldErrors{
				"title":    {"This field is required."},
				"due_date": {dto.MessageInvalidDateFormat},
				"priority": {"Select a valid choice. low is not one of the available choices."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := tt.form.Validate()

			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, errs)

				return
			}

			require.True(t, errs.Empty(), "unexpected errors: %v", errs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskForm_FromRequest(t *testing.T) {
	body := url.Values{
		"title":       {"Alpha"},
		"description": {"first"},
		"due_date":    {"01/01/2026"},
		"priority":    {"MED"},
	}

	req := httptest.NewRequest(http.MethodPost, "/new/", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form dto.TaskForm
	form.FromRequest(req)

	assert.Equal(t, dto.TaskForm{Title: "Alpha", Description: "first", DueDate: "01/01/2026", Priority: "MED"}, form)
}

func TestTaskRequest_ToModel(t *testing.T) {
	req := dto.TaskRequest{Title: "Alpha", Description: "first", DueDate: date(2025, time.October, 5), Priority: model.PriorityHigh}

	before := time.Now().Add(-time.Second)
	task := req.ToModel()

	assert.Zero(t, task.ID)
	assert.Equal(t, "Alpha", task.Title)
	assert.Equal(t, "first", task.Description)
	assert.Equal(t, req.DueDate, task.DueDate)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.False(t, task.Completed)
	assert.True(t, task.CreatedAt.After(before))
	assert.Equal(t, time.UTC, task.CreatedAt.Location())
}

func TestTaskRequest_ApplyTo(t *testing.T) {
	createdAt := time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC)
	task := model.Task{
		ID:          9,
		Title:       "Old",
		Description: "old",
		DueDate:     date(2025, time.March, 1),
		Priority:    model.PriorityHigh,
		Completed:   true,
		CreatedAt:   createdAt,
	}

	dto.TaskRequest{Title: "New", Priority: model.PriorityLow}.ApplyTo(&task)

	assert.Equal(t, model.Task{
		ID:        9,
		Title:     "New",
		Priority:  model.PriorityLow,
		Completed: true,
		CreatedAt: createdAt,
	}, task)

	assert.Equal(t, map[string]any{
		"title":       "New",
		"description": "",
		"due_date":    (*time.Time)(nil),
		"priority":    model.PriorityLow,
	}, dto.UpdatedFields(task))
}

func TestDueDateRoundTrip(t *testing.T) {
	req, errs := dto.TaskForm{Title: "Alpha", DueDate: "05/10/2025", Priority: "LOW"}.Validate()
	require.True(t, errs.Empty())

	var res dto.TaskResponse
	res.FromModel(model.Task{ID: 1, Title: req.Title, DueDate: req.DueDate, Priority: req.Priority})

	form := dto.TaskFormFromResponse(res)

	assert.Equal(t, dto.TaskForm{Title: "Alpha", DueDate: "05/10/2025", Priority: "LOW"}, form)
}
