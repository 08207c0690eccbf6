package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	payrollUC "github.com/rifky200804/ez-request-web/internal/usecase/payroll"
)

type PayrollHandler struct{ uc *payrollUC.Usecase }

func NewPayrollHandler(uc *payrollUC.Usecase) *PayrollHandler { return &PayrollHandler{uc: uc} }

type simulateReq struct {
	Name     string `json:"name"     validate:"required,max=150"`
	Role     string `json:"role"     validate:"required,max=50"`
	Religion string `json:"religion" validate:"max=50"`
}

// Simulate is the public salary calculator: pure computation, no
// persistence, no authentication.
func (h *PayrollHandler) Simulate(c echo.Context) error {
	var req simulateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out := h.uc.Simulate(payrollUC.SimulateInput{
		Name:     req.Name,
		Role:     req.Role,
		Religion: req.Religion,
	})
	return c.JSON(http.StatusOK, out)
}
