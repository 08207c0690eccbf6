package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rifky200804/ez-request-web/internal/adapter/middleware"
	approvalUC "github.com/rifky200804/ez-request-web/internal/usecase/approval"
	"github.com/rifky200804/ez-request-web/pkg/id"
)

type ApprovalHandler struct{ uc *approvalUC.Usecase }

func NewApprovalHandler(uc *approvalUC.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type decideReq struct {
	Action   string `json:"action"   validate:"required,oneof=approve reject"`
	Feedback string `json:"feedback"`
}

// Decide applies the acting approver's decision to the request's
// active stage.
func (h *ApprovalHandler) Decide(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return err
	}
	requestID := c.Param("request_id")
	if !id.Valid(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id path param"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	decision := approvalUC.DecisionApprove
	if req.Action == "reject" {
		decision = approvalUC.DecisionReject
	}
	dto, err := h.uc.Act(c.Request().Context(), approvalUC.ActInput{
		RequestID: requestID,
		ActorID:   actorID,
		Decision:  decision,
		Comment:   req.Feedback,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListPending is the approver's queue, oldest first.
func (h *ApprovalHandler) ListPending(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return err
	}
	list, err := h.uc.ListPending(c.Request().Context(), actorID, pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListHistory is everything the approver already decided, newest first.
func (h *ApprovalHandler) ListHistory(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return err
	}
	list, err := h.uc.ListHistory(c.Request().Context(), actorID, pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
