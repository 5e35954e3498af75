package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MajjK/ToDoAppReact/internal/auth"
	"github.com/MajjK/ToDoAppReact/internal/domain"
	"github.com/MajjK/ToDoAppReact/internal/service"
	"github.com/MajjK/ToDoAppReact/internal/service/serviceutils"
)

// UserHandler serves the admin user directory. All routes here sit
// behind an admin check; non-admins get 404, not 403.
type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) ListHandler(c echo.Context) error {
	caller, ok := requireAdmin(c)
	if !ok {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}

	page, err := h.svc.List(c.Request().Context(), listRequest(c, caller))
	if err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "", page)
}

func (h *UserHandler) GetHandler(c echo.Context) error {
	if _, ok := requireAdmin(c); !ok {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}

	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "", user)
}

func (h *UserHandler) CreateHandler(c echo.Context) error {
	if _, ok := requireAdmin(c); !ok {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}

	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	user := domain.User{Login: req.Login, Password: req.Password}
	if err := h.svc.Create(c.Request().Context(), &user); err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "User created", user)
}

func (h *UserHandler) UpdateHandler(c echo.Context) error {
	if _, ok := requireAdmin(c); !ok {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}

	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	user := domain.User{UserID: id, Login: req.Login, Password: req.Password}
	if err := h.svc.Update(c.Request().Context(), &user); err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "User updated", user)
}

func (h *UserHandler) DeleteHandler(c echo.Context) error {
	if _, ok := requireAdmin(c); !ok {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Not found", nil)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "User deleted", nil)
}

func requireAdmin(c echo.Context) (domain.Caller, bool) {
	caller, err := auth.CallerFromContext(c)
	if err != nil || !caller.IsAdmin() {
		return domain.Caller{}, false
	}
	return caller, true
}
