package task

import (
	"context"
	"fmt"
	"net/http"
	"tasktracker/infras/otel"
	"tasktracker/internal/domains/task/model"
	"tasktracker/internal/domains/task/model/dto"
	"tasktracker/internal/domains/task/service"
	"tasktracker/shared"
	"tasktracker/shared/constant"
	"tasktracker/shared/failure"
	"tasktracker/transport/http/response"
	"tasktracker/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pathTaskList = "/"

type Handler struct {
	service service.Task
	view    view.Renderer
	otel    otel.Otel
}

func New(service service.Task, renderer view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		view:    renderer,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.List)
	router.Get("/new/", handler.CreateForm)
	router.Post("/new/", handler.Create)

	router.Route("/{id}", func(routerGroup chi.Router) {
		routerGroup.Get("/edit/", handler.UpdateForm)
		routerGroup.Post("/edit/", handler.Update)
		routerGroup.Get("/delete/", handler.ConfirmDelete)
		routerGroup.Post("/delete/", handler.Delete)
		routerGroup.Get("/toggle/", handler.ToggleRedirect)
		routerGroup.Post("/toggle/", handler.Toggle)
	})
}

// List renders the task list.
// @Summary List tasks
// @Description Render the task list filtered by search text, status and priority, in the requested order.
// @Tags Task
// @Produce html
// @Param q query string false "Case-insensitive search on title and description"
// @Param status query string false "all, open or done"
// @Param priority query string false "all, LOW, MED or HIGH"
// @Param sort query string false "created_at, due_date, priority, completed or title, prefixed with - for descending"
// @Success 200 {string} string "Task list page"
// @Failure 500 {string} string "Error page"
// @Router / [get]
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".task.List")
	defer scope.End()

	query := dto.ListQuery{}
	query.FromRequest(request)

	res, err := handler.service.GetAll(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list tasks")

		response.WithErrorPage(writer, handler.view, err)

		return
	}

	response.WithPage(writer, handler.view, http.StatusOK, view.PageTaskList, newListPage(res))
}

// CreateForm renders an empty task form.
// @Summary New task form
// @Tags Task
// @Produce html
// @Success 200 {string} string "Task form page"
// @Router /new/ [get]
func (handler *Handler) CreateForm(writer http.ResponseWriter, _ *http.Request) {
	form := dto.TaskForm{Priority: model.DefaultPriority.String()}

	response.WithPage(writer, handler.view, http.StatusOK, view.PageTaskForm, newFormPage(modeCreate, createAction(), form, nil))
}

// Create stores a new task.
// @Summary Create a task
// @Description Validate the submitted form. A valid form is stored and redirects to the list; an invalid one is shown again with its errors.
// @Tags Task
// @Accept x-www-form-urlencoded
// @Produce html
// @Param title formData string true "Title, at most 200 characters"
// @Param description formData string false "Description"
// @Param due_date formData string false "Due date as DD/MM/YYYY"
// @Param priority formData string false "LOW, MED or HIGH"
// @Success 303 {string} string "Redirect to the list"
// @Success 200 {string} string "Form with field errors"
// @Failure 500 {string} string "Error page"
// @Router /new/ [post]
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".task.Create")
	defer scope.End()

	form, err := handler.parseForm(writer, request)
	if err != nil {
		scope.TraceError(err)
		response.WithErrorPage(writer, handler.view, err)

		return
	}

	req, errs := form.Validate()
	if !errs.Empty() {
		response.WithPage(writer, handler.view, http.StatusOK, view.PageTaskForm, newFormPage(modeCreate, createAction(), form, errs))

		return
	}

	if _, err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task")

		response.WithErrorPage(writer, handler.view, err)

		return
	}

	response.WithRedirect(writer, request, pathTaskList)
}

// UpdateForm renders the form pre-filled with a stored task.
// @Summary Edit task form
// @Tags Task
// @Produce html
// @Param id path int true "Task ID"
// @Success 200 {string} string "Task form page"
// @Failure 404 {string} string "Error page"
// @Router /{id}/edit/ [get]
func (handler *Handler) UpdateForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".task.UpdateForm")
	defer scope.End()

	id, task, err := handler.lookup(ctx, request)
	if err != nil {
		scope.TraceError(err)
		response.WithErrorPage(writer, handler.view, err)

		return
	}

	form := dto.TaskFormFromResponse(task)

	response.WithPage(writer, handler.view, http.StatusOK, view.PageTaskForm, newFormPage(modeUpdate, updateAction(id), form, nil))
}

// Update saves the edited fields of a task.
// @Summary Update a task
// @Description Validate the submitted form and merge it onto the stored task. Completion and creation time are kept.
// @Tags Task
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Task ID"
// @Param title formData string true "Title, at most 200 characters"
// @Param description formData string false "Description"
// @Param due_date formData string false "Due date as DD/MM/YYYY"
// @Param priority formData string false "LOW, MED or HIGH"
// @Success 303 {string} string "Redirect to the list"
// @Success 200 {string} string "Form with field errors"
// @Failure 404 {string} string "Error page"
// @Failure 500 {string} string "Error page"
// @Router /{id}/edit/ [post]
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".task.Update")
	defer scope.End()

	id, err := taskID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithErrorPage(writer, handler.view, err)

		return
	}

	form, err := handler.parseForm(writer, request)
	if err != nil {
		scope.TraceError(err)
		response.WithErrorPage(writer, handler.view, err)

		return
	}

	req, errs := form.Validate()
	if !errs.Empty() {
		if _, err = handler.service.Get(ctx, id); err != nil {
			scope.TraceError(err)
			logFailure(err, id, "failed to get task")

			response.WithErrorPage(writer, handler.view, err)

			return
		}

		response.WithPage(writer, handler.view, http.StatusOK, view.PageTaskForm, newFormPage(modeUpdate, updateAction(id), form, errs))

		return
	}

	if err = handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		logFailure(err, id, "failed to update task")

		response.WithErrorPage(writer, handler.view, err)

		return
	}

	response.WithRedirect(writer, request, pathTaskList)
}

// ConfirmDelete asks before deleting a task.
// @Summary Delete confirmation
// @Tags Task
// @Produce html
// @Param id path int true "Task ID"
// @Success 200 {string} string "Confirmation page"
// @Failure 404 {string} string "Error page"
// @Router /{id}/delete/ [get]
func (handler *Handler) ConfirmDelete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".task.ConfirmDelete")
	defer scope.End()

	_, task, err := handler.lookup(ctx, request)
	if err != nil {
		scope.TraceError(err)
		response.WithErrorPage(writer, handler.view, err)

		return
	}

	response.WithPage(writer, handler.view, http.StatusOK, view.PageTaskConfirmDelete, confirmDeletePage{Task: task})
}

// Delete removes a task.
// @Summary Delete a task
// @Tags Task
// @Produce html
// @Param id path int true "Task ID"
// @Success 303 {string} string "Redirect to the list"
// @Failure 404 {string} string "Error page"
// @Failure 500 {string} string "Error page"
// @Router /{id}/delete/ [post]
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".task.Delete")
	defer scope.End()

	id, err := taskID(request)
	if err != nil {
		response.WithErrorPage(writer, handler.view, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		logFailure(err, id, "failed to delete task")

		response.WithErrorPage(writer, handler.view, err)

		return
	}

	response.WithRedirect(writer, request, pathTaskList)
}

// Toggle flips the completed flag of a task.
// @Summary Toggle completion
// @Tags Task
// @Produce html
// @Param id path int true "Task ID"
// @Success 303 {string} string "Redirect to the list"
// @Failure 404 {string} string "Error page"
// @Failure 500 {string} string "Error page"
// @Router /{id}/toggle/ [post]
func (handler *Handler) Toggle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".task.Toggle")
	defer scope.End()

	id, err := taskID(request)
	if err != nil {
		response.WithErrorPage(writer, handler.view, err)

		return
	}

	if err = handler.service.Toggle(ctx, id); err != nil {
		scope.TraceError(err)
		logFailure(err, id, "failed to toggle task")

		response.WithErrorPage(writer, handler.view, err)

		return
	}

	response.WithRedirect(writer, request, pathTaskList)
}

// ToggleRedirect answers a GET on the toggle URL without changing anything.
// @Summary Toggle without a POST
// @Tags Task
// @Produce html
// @Param id path int true "Task ID"
// @Success 303 {string} string "Redirect to the list"
// @Failure 404 {string} string "Error page"
// @Router /{id}/toggle/ [get]
func (handler *Handler) ToggleRedirect(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".task.ToggleRedirect")
	defer scope.End()

	if _, _, err := handler.lookup(ctx, request); err != nil {
		scope.TraceError(err)
		response.WithErrorPage(writer, handler.view, err)

		return
	}

	response.WithRedirect(writer, request, pathTaskList)
}

func (handler *Handler) lookup(ctx context.Context, request *http.Request) (int64, dto.TaskResponse, error) {
	id, err := taskID(request)
	if err != nil {
		return 0, dto.TaskResponse{}, err
	}

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		logFailure(err, id, "failed to get task")

		return 0, dto.TaskResponse{}, err
	}

	return id, task, nil
}

func (handler *Handler) parseForm(writer http.ResponseWriter, request *http.Request) (dto.TaskForm, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, constant.RequestMaxMemory)

	form := dto.TaskForm{}

	if err := request.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("failed to parse task form")

		return form, failure.BadRequest(err)
	}

	form.FromRequest(request)

	return form, nil
}

func taskID(request *http.Request) (int64, error) {
	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

func logFailure(err error, id int64, msg string) {
	if failure.IsNotFound(err) {
		return
	}

	log.Error().Err(err).Int64("id", id).Msg(msg)
}

func createAction() string {
	return "/new/"
}

func updateAction(id int64) string {
	return fmt.Sprintf("/%d/edit/", id)
}
