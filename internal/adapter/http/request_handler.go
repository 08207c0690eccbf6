package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/rifky200804/ez-request-web/internal/adapter/middleware"
	requestUC "github.com/rifky200804/ez-request-web/internal/usecase/request"
)

type RequestHandler struct{ uc *requestUC.Usecase }

func NewRequestHandler(uc *requestUC.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type createRequestReq struct {
	Type               string           `json:"request_type"          validate:"required,oneof=PROPOSAL REIMBURSEMENT LEAVE"`
	Title              string           `json:"title"                 validate:"required,max=200"`
	Description        string           `json:"description"`
	Amount             *decimal.Decimal `json:"amount"`
	StartDate          *string          `json:"start_date"            validate:"omitempty,datetime=2006-01-02"`
	EndDate            *string          `json:"end_date"              validate:"omitempty,datetime=2006-01-02"`
	AttachmentURL      string           `json:"attachment_url"        validate:"omitempty,url"`
	ManagerApproverID  *string          `json:"manager_approver_id"   validate:"omitempty,uuid4"`
	DirectorApproverID *string          `json:"director_approver_id"  validate:"omitempty,uuid4"`
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return err
	}
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), requestUC.CreateInput{
		SubmitterID:        actorID,
		Type:               req.Type,
		Title:              req.Title,
		Description:        req.Description,
		Amount:             req.Amount,
		StartDate:          parseDate(req.StartDate),
		EndDate:            parseDate(req.EndDate),
		AttachmentURL:      req.AttachmentURL,
		ManagerApproverID:  req.ManagerApproverID,
		DirectorApproverID: req.DirectorApproverID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListMyRequests returns the acting employee's own submissions.
func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return err
	}
	list, err := h.uc.ListMine(c.Request().Context(), actorID, pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// WithdrawRequest deletes the actor's own still-pending request.
func (h *RequestHandler) WithdrawRequest(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Withdraw(c.Request().Context(), c.Param("request_id"), actorID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
