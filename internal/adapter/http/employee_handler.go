package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	employeeUC "github.com/rifky200804/ez-request-web/internal/usecase/employee"
)

type EmployeeHandler struct{ uc *employeeUC.Usecase }

func NewEmployeeHandler(uc *employeeUC.Usecase) *EmployeeHandler { return &EmployeeHandler{uc: uc} }

type createEmployeeReq struct {
	FullName   string  `json:"full_name"   validate:"required,max=150"`
	Position   string  `json:"position"    validate:"max=100"`
	Department string  `json:"department"  validate:"max=100"`
	Phone      string  `json:"phone"       validate:"max=20"`
	Role       string  `json:"role"        validate:"required,oneof=STAFF MANAGER DIRECTOR ADMIN"`
	DateHired  *string `json:"date_hired"  validate:"omitempty,datetime=2006-01-02"`
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req createEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), employeeUC.CreateInput{
		FullName:   req.FullName,
		Position:   req.Position,
		Department: req.Department,
		Phone:      req.Phone,
		Role:       req.Role,
		DateHired:  parseDate(req.DateHired),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("employee_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListEmployees optionally filters by ?role=; the create-request form
// uses this to offer manager/director approver choices.
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type updateEmployeeReq struct {
	FullName   *string `json:"full_name"   validate:"omitempty,max=150"`
	Position   *string `json:"position"    validate:"omitempty,max=100"`
	Department *string `json:"department"  validate:"omitempty,max=100"`
	Phone      *string `json:"phone"       validate:"omitempty,max=20"`
	Role       *string `json:"role"        validate:"omitempty,oneof=STAFF MANAGER DIRECTOR ADMIN"`
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	var req updateEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("employee_id"), employeeUC.UpdateInput{
		FullName:   req.FullName,
		Position:   req.Position,
		Department: req.Department,
		Phone:      req.Phone,
		Role:       req.Role,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("employee_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
