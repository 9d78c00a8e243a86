package task_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"tasktracker/config"
	"tasktracker/infras/database/databasetest"
	"tasktracker/infras/kafka"
	"tasktracker/infras/otel/mocks"
	"tasktracker/internal/domains/task/model"
	"tasktracker/internal/domains/task/model/dto"
	"tasktracker/internal/domains/task/repository"
	"tasktracker/internal/domains/task/service"
	"tasktracker/internal/handlers/task"
	"tasktracker/shared/constant"
	"tasktracker/transport/http/view"
	"testing"

	taskMocks "tasktracker/internal/domains/task/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	router  http.Handler
	service service.Task
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cfg := &config.Config{}
	otel := mocks.NewOtel()
	svc := service.New(repository.New(databasetest.NewSQLite(t), otel), cfg, kafka.New(cfg), otel)

	return fixture{
		router:  newRouter(t, svc),
		service: svc,
	}
}

func newRouter(t *testing.T, svc service.Task) http.Handler {
	t.Helper()

	renderer, err := view.New()
	require.NoError(t, err)

	handler := task.New(svc, renderer, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func (f fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func (f fixture) post(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func (f fixture) create(t *testing.T, form dto.TaskForm) dto.TaskResponse {
	t.Helper()

	req, errs := form.Validate()
	require.True(t, errs.Empty(), "%v", errs)

	res, err := f.service.Create(context.Background(), req)
	require.NoError(t, err)

	return res
}

func (f fixture) tasks(t *testing.T) []dto.TaskResponse {
	t.Helper()

	res, err := f.service.GetAll(context.Background(), dto.ListQuery{})
	require.NoError(t, err)

	return res.Tasks
}

func (f fixture) task(t *testing.T, id int64) dto.TaskResponse {
	t.Helper()

	res, err := f.service.Get(context.Background(), id)
	require.NoError(t, err)

	return res
}

// seed stores Alpha (high, done) and Bravo (low, open).
func (f fixture) seed(t *testing.T) (alpha, bravo dto.TaskResponse) {
	t.Helper()

	alpha = f.create(t, dto.TaskForm{Title: "Alpha", Description: "first letter", DueDate: "05/10/2025", Priority: "HIGH"})
	bravo = f.create(t, dto.TaskForm{Title: "Bravo", Description: "second letter", Priority: "LOW"})

	require.NoError(t, f.service.Toggle(context.Background(), alpha.ID))

	return alpha, bravo
}

func path(format string, id int64) string {
	return fmt.Sprintf(format, id)
}

func TestList_Filters(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	tests := []struct {
		name        string
		query       string
		wantAlpha   bool
		wantBravo   bool
		wantPresent []string
	}{
		{name: "no filters", query: "", wantAlpha: true, wantBravo: true},
		{name: "search title", query: "q=alp", wantAlpha: true},
		{name: "search is case insensitive", query: "q=BRA", wantBravo: true},
		{name: "search description", query: "q=letter", wantAlpha: true, wantBravo: true},
		{name: "search surrounding spaces ignored", query: "q=+second+", wantBravo: true},
		{name: "open", query: "status=open", wantBravo: true},
		{name: "done", query: "status=done", wantAlpha: true},
		{name: "unknown status ignored", query: "status=later", wantAlpha: true, wantBravo: true},
		{name: "high priority", query: "priority=HIGH", wantAlpha: true},
		{name: "low priority", query: "priority=LOW", wantBravo: true},
		{name: "unknown priority ignored", query: "priority=URGENT", wantAlpha: true, wantBravo: true},
		{name: "filters combine", query: "q=letter&status=open&priority=LOW", wantBravo: true},
		{name: "no match", query: "q=zzz", wantPresent: []string{"No tasks found."}},
		{name: "literal wildcard", query: "q=%25", wantPresent: []string{"No tasks found."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.get(t, "/?"+tt.query)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, constant.ContentTypeHTML, rec.Header().Get(constant.RequestHeaderContentType))

			body := rec.Body.String()
			assert.Equal(t, tt.wantAlpha, strings.Contains(body, "Alpha"), "Alpha")
			assert.Equal(t, tt.wantBravo, strings.Contains(body, "Bravo"), "Bravo")

			for _, want := range tt.wantPresent {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestList_EchoesFilterState(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	body := f.get(t, "/?q=letter&status=open&priority=LOW&sort=-title").Body.String()

	assert.Contains(t, body, `value="letter"`)
	assert.Contains(t, body, `<option value="open" selected>`)
	assert.Contains(t, body, `<option value="LOW" selected>`)
	assert.Contains(t, body, `<option value="-title" selected>`)
	assert.Contains(t, body, "q=letter&amp;sort=priority&amp;status=open")

	body = f.get(t, "/").Body.String()

	assert.Contains(t, body, `<option value="all" selected>All tasks</option>`)
	assert.Contains(t, body, `<option value="all" selected>All priorities</option>`)
	assert.Contains(t, body, `<option value="created_at" selected>`)
}

func TestList_Sorting(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	order := func(t *testing.T, query string) []string {
		t.Helper()

		body := f.get(t, "/?"+query).Body.String()

		alpha := strings.Index(body, "Alpha")
		bravo := strings.Index(body, "Bravo")
		require.NotEqual(t, -1, alpha)
		require.NotEqual(t, -1, bravo)

		if alpha < bravo {
			return []string{"Alpha", "Bravo"}
		}

		return []string{"Bravo", "Alpha"}
	}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"Alpha", "Bravo"}},
		{query: "sort=__bad__", want: []string{"Alpha", "Bravo"}},
		{query: "sort=-__bad__", want: []string{"Alpha", "Bravo"}},
		{query: "sort=-created_at", want: []string{"Bravo", "Alpha"}},
		{query: "sort=priority", want: []string{"Bravo", "Alpha"}},
		{query: "sort=-priority", want: []string{"Alpha", "Bravo"}},
		{query: "sort=-title", want: []string{"Bravo", "Alpha"}},
		{query: "sort=completed", want: []string{"Bravo", "Alpha"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, order(t, tt.query))
		})
	}
}

func TestList_ShowsFormattedFields(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	body := f.get(t, "/").Body.String()

	assert.Contains(t, body, "05/10/2025")
	assert.Contains(t, body, "High")
	assert.Contains(t, body, "Low")
	assert.Contains(t, body, "2 task(s)")
}

func TestCreateForm(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/new/")

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Create task")
	assert.Contains(t, body, `action="/new/"`)
	assert.Contains(t, body, `<option value="LOW" selected>Low</option>`)
	assert.Contains(t, body, `<option value="MED">Medium</option>`)
	assert.Contains(t, body, `placeholder="DD/MM/YYYY"`)
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, "/new/", url.Values{
		"title":       {"  Alpha  "},
		"description": {" notes "},
		"due_date":    {"05/10/2025"},
		"priority":    {"HIGH"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(constant.RequestHeaderLocation))

	tasks := f.tasks(t)
	require.Len(t, tasks, 1)

	assert.Equal(t, "Alpha", tasks[0].Title)
	assert.Equal(t, "notes", tasks[0].Description)
	assert.Equal(t, "05/10/2025", tasks[0].DueDateText)
	assert.Equal(t, model.PriorityHigh, tasks[0].Priority)
	assert.False(t, tasks[0].Completed)
}

func TestCreate_DefaultsToLowPriority(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, "/new/", url.Values{"title": {"Bravo"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)

	tasks := f.tasks(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, model.PriorityLow, tasks[0].Priority)
	assert.Nil(t, tasks[0].DueDate)
}

func TestCreate_InvalidForm(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			name:    "missing title",
			form:    url.Values{"title": {"   "}},
			message: "This field is required.",
		},
		{
			name:    "title too long",
			form:    url.Values{"title": {strings.Repeat("a", model.TitleMaxLength+1)}},
			message: "Ensure this value has at most 200 characters.",
		},
		{
			name:    "impossible date",
			form:    url.Values{"title": {"Alpha"}, "due_date": {"31/02/2025"}},
			message: dto.MessageInvalidDateFormat,
		},
		{
			name:    "iso date",
			form:    url.Values{"title": {"Alpha"}, "due_date": {"2025-10-05"}},
			message: dto.MessageInvalidDateFormat,
		},
		{
			name:    "unknown priority",
			form:    url.Values{"title": {"Alpha"}, "priority": {"URGENT"}},
			message: "Select a valid choice. URGENT is not one of the available choices.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.post(t, "/new/", tt.form)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.Contains(t, rec.Body.String(), "Create task")
			assert.Empty(t, f.tasks(t))
		})
	}
}

func TestCreate_KeepsSubmittedValues(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, "/new/", url.Values{"title": {"Alpha"}, "due_date": {"31/02/2025"}, "priority": {"MED"}})

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `value="Alpha"`)
	assert.Contains(t, body, `value="31/02/2025"`)
	assert.Contains(t, body, `<option value="MED" selected>Medium</option>`)
}

func TestUpdateForm(t *testing.T) {
	f := newFixture(t)
	alpha, _ := f.seed(t)

	rec := f.get(t, path("/%d/edit/", alpha.ID))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Update task")
	assert.Contains(t, body, path(`action="/%d/edit/"`, alpha.ID))
	assert.Contains(t, body, `value="Alpha"`)
	assert.Contains(t, body, `value="05/10/2025"`)
	assert.Contains(t, body, `<option value="HIGH" selected>High</option>`)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	alpha, _ := f.seed(t)

	rec := f.post(t, path("/%d/edit/", alpha.ID), url.Values{
		"title":    {"Alpha prime"},
		"due_date": {""},
		"priority": {"MED"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)

	got := f.task(t, alpha.ID)
	assert.Equal(t, "Alpha prime", got.Title)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.DueDate)
	assert.Equal(t, model.PriorityMedium, got.Priority)
	assert.True(t, got.Completed)
	assert.True(t, alpha.CreatedAt.Equal(got.CreatedAt))
}

func TestUpdate_InvalidForm(t *testing.T) {
	f := newFixture(t)
	alpha, _ := f.seed(t)

	rec := f.post(t, path("/%d/edit/", alpha.ID), url.Values{"title": {""}, "due_date": {"2025-10-05"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This field is required.")
	assert.Contains(t, rec.Body.String(), dto.MessageInvalidDateFormat)
	assert.Contains(t, rec.Body.String(), "Update task")

	assert.Equal(t, "Alpha", f.task(t, alpha.ID).Title)
}

func TestToggle(t *testing.T) {
	f := newFixture(t)
	_, bravo := f.seed(t)

	rec := f.post(t, path("/%d/toggle/", bravo.ID), nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(constant.RequestHeaderLocation))
	assert.True(t, f.task(t, bravo.ID).Completed)

	f.post(t, path("/%d/toggle/", bravo.ID), nil)
	assert.False(t, f.task(t, bravo.ID).Completed)
}

func TestPassiveGetsNeverMutate(t *testing.T) {
	f := newFixture(t)
	alpha, bravo := f.seed(t)

	rec := f.get(t, path("/%d/toggle/", bravo.ID))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.False(t, f.task(t, bravo.ID).Completed)

	rec = f.get(t, path("/%d/delete/", alpha.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `Are you sure you want to delete "Alpha"?`)
	assert.Len(t, f.tasks(t), 2)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	alpha, bravo := f.seed(t)

	rec := f.post(t, path("/%d/delete/", alpha.ID), nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	tasks := f.tasks(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, bravo.ID, tasks[0].ID)

	assert.Equal(t, http.StatusNotFound, f.get(t, path("/%d/edit/", alpha.ID)).Code)
	assert.Equal(t, http.StatusNotFound, f.post(t, path("/%d/delete/", alpha.ID), nil).Code)
}

func TestUnknownIDs(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: "/999/edit/"},
		{method: http.MethodPost, target: "/999/edit/"},
		{method: http.MethodGet, target: "/999/delete/"},
		{method: http.MethodPost, target: "/999/delete/"},
		{method: http.MethodGet, target: "/999/toggle/"},
		{method: http.MethodPost, target: "/999/toggle/"},
		{method: http.MethodGet, target: "/abc/edit/"},
		{method: http.MethodPost, target: "/abc/toggle/"},
		{method: http.MethodGet, target: "/0/delete/"},
		{method: http.MethodGet, target: "/-1/edit/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			var rec *httptest.ResponseRecorder
			if tt.method == http.MethodGet {
				rec = f.get(t, tt.target)
			} else {
				rec = f.post(t, tt.target, url.Values{"title": {"Changed"}})
			}

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "task not found")
		})
	}

	assert.Len(t, f.tasks(t), 2)
}

func TestUpdate_UnknownIDWithInvalidForm(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	rec := f.post(t, "/999/edit/", url.Values{"title": {""}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "task not found")
}

func TestUpdate_LoadsTaskOnce(t *testing.T) {
	stored := model.Task{ID: 7, Title: "Alpha", Priority: model.PriorityLow}

	tests := []struct {
		name         string
		form         url.Values
		updates      int
		wantCode     int
		wantBody     string
		wantLocation string
	}{
		{
			name:         "valid form",
			form:         url.Values{"title": {"Changed"}, "priority": {"HIGH"}},
			updates:      1,
			wantCode:     http.StatusSeeOther,
			wantLocation: "/",
		},
		{
			name:     "invalid form",
			form:     url.Values{"title": {""}},
			wantCode: http.StatusOK,
			wantBody: "This field is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := taskMocks.NewMockTask(ctrl)
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil).Times(1)
			repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(tt.updates)

			cfg := &config.Config{}
			svc := service.New(repo, cfg, kafka.New(cfg), mocks.NewOtel())
			f := fixture{router: newRouter(t, svc), service: svc}

			rec := f.post(t, "/7/edit/", tt.form)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(constant.RequestHeaderLocation))
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestList_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := taskMocks.NewMockTask(ctrl)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk I/O error"))

	cfg := &config.Config{}
	svc := service.New(repo, cfg, kafka.New(cfg), mocks.NewOtel())
	router := newRouter(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.NotContains(t, rec.Body.String(), "disk I/O error")
}
