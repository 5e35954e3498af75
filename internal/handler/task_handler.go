package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MajjK/ToDoAppReact/internal/auth"
	"github.com/MajjK/ToDoAppReact/internal/domain"
	"github.com/MajjK/ToDoAppReact/internal/query"
	"github.com/MajjK/ToDoAppReact/internal/service"
	"github.com/MajjK/ToDoAppReact/internal/service/serviceutils"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListHandler serves GET /tasks. Query params mirror the listing form:
// sortOrder, currentFilter, searchString, page. A searchString present
// in the request (even empty) starts a new search on page 1.
func (h *TaskHandler) ListHandler(c echo.Context) error {
	caller, err := auth.CallerFromContext(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Unauthorized", err)
	}

	page, err := h.svc.List(c.Request().Context(), listRequest(c, caller))
	if err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "", page)
}

func (h *TaskHandler) GetHandler(c echo.Context) error {
	caller, err := auth.CallerFromContext(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Unauthorized", err)
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}

	task, err := h.svc.Get(c.Request().Context(), caller, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "", task)
}

func (h *TaskHandler) CreateHandler(c echo.Context) error {
	caller, err := auth.CallerFromContext(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Unauthorized", err)
	}

	var task domain.Task
	if err := c.Bind(&task); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if task.UserID == 0 {
		task.UserID = caller.ID
	}

	if err := h.svc.Create(c.Request().Context(), caller, &task); err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Task created", task)
}

func (h *TaskHandler) UpdateHandler(c echo.Context) error {
	caller, err := auth.CallerFromContext(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Unauthorized", err)
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}

	var task domain.Task
	if err := c.Bind(&task); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	task.TaskID = id

	if err := h.svc.Update(c.Request().Context(), caller, &task); err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Task updated", task)
}

func (h *TaskHandler) DeleteHandler(c echo.Context) error {
	caller, err := auth.CallerFromContext(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Unauthorized", err)
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}

	if err := h.svc.Delete(c.Request().Context(), caller, id); err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Task deleted", nil)
}

func listRequest(c echo.Context, caller domain.Caller) query.ListRequest {
	req := query.ListRequest{
		Caller:        caller,
		SortOrder:     c.QueryParam("sortOrder"),
		CurrentFilter: c.QueryParam("currentFilter"),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		req.Page = page
	}
	// Presence of the param is what matters: an empty searchString is
	// still a new search and resets paging.
	if search, ok := c.QueryParams()["searchString"]; ok && len(search) > 0 {
		req.Search = &search[0]
	}
	return req
}

// writeServiceError maps the error taxonomy to a response. Denials have
// already been folded into ErrNotFound by the service, so a 404 here
// says nothing about whether the task exists.
func writeServiceError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	case errors.As(err, &validationErr):
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Validation failed", validationErr)
	case errors.Is(err, domain.ErrConflict):
		return serviceutils.ResponseError(c, http.StatusConflict, "Unable to save changes", err)
	default:
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Internal error", err)
	}
}
