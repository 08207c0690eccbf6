package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rifky200804/ez-request-web/internal/adapter/middleware"
	employeeDomain "github.com/rifky200804/ez-request-web/internal/domain/employee"
	domain "github.com/rifky200804/ez-request-web/internal/domain/request"
	"github.com/rifky200804/ez-request-web/internal/domain/uow"
	"github.com/rifky200804/ez-request-web/internal/testutil/employeemock"
	"github.com/rifky200804/ez-request-web/internal/testutil/requestmock"
	"github.com/rifky200804/ez-request-web/internal/testutil/uowmock"
	requestUC "github.com/rifky200804/ez-request-web/internal/usecase/request"
)

const (
	staffID    = "11111111-1111-4111-8111-111111111111"
	managerID  = "22222222-2222-4222-8222-222222222222"
	directorID = "33333333-3333-4333-8333-333333333333"
)

func directory() *employeemock.Repo {
	return employeemock.Directory(
		&employeeDomain.Employee{EmployeeID: staffID, FullName: "Bob", Role: employeeDomain.RoleStaff},
		&employeeDomain.Employee{EmployeeID: managerID, FullName: "Alice", Role: employeeDomain.RoleManager},
		&employeeDomain.Employee{EmployeeID: directorID, FullName: "Dewi", Role: employeeDomain.RoleDirector},
	)
}

func newRequestHandler(repo *requestmock.Repo) *RequestHandler {
	dir := directory()
	return NewRequestHandler(requestUC.NewUsecase(repo, dir, uowmock.New(uow.Repos{Employees: dir, Requests: repo})))
}

// do runs a handler behind RequireActor the way the router wires it.
func do(t *testing.T, h echo.HandlerFunc, method, target, actor, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if actor != "" {
		req.Header.Set(middleware.ActorHeader, actor)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if err := middleware.RequireActor()(h)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestCreateRequest_Created(t *testing.T) {
	h := newRequestHandler(&requestmock.Repo{})

	body := `{
		"request_type": "REIMBURSEMENT",
		"title": "Taxi to client",
		"amount": "120000",
		"manager_approver_id": "` + managerID + `",
		"director_approver_id": "` + directorID + `"
	}`
	rec := do(t, h.CreateRequest, http.MethodPost, "/v1/requests", staffID, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var dto requestUC.RequestDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Status != string(domain.StatusPending) || len(dto.RequestID) != 32 {
		t.Fatalf("dto: %+v", dto)
	}
}

func TestCreateRequest_BadEnum(t *testing.T) {
	h := newRequestHandler(&requestmock.Repo{})

	body := `{"request_type": "VACATION", "title": "x"}`
	rec := do(t, h.CreateRequest, http.MethodPost, "/v1/requests", staffID, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeErr(t, rec)
	found := false
	for _, d := range resp.Details {
		if d.Field == "request_type" && strings.Contains(d.Message, "PROPOSAL") {
			found = true
		}
	}
	if !found {
		t.Fatalf("details = %+v", resp.Details)
	}
}

func TestCreateRequest_DomainValidation(t *testing.T) {
	h := newRequestHandler(&requestmock.Repo{})

	// Passes the body validator, fails the business rules.
	body := `{
		"request_type": "LEAVE",
		"title": "Holiday",
		"start_date": "2024-05-10",
		"end_date": "2024-05-05",
		"manager_approver_id": "` + managerID + `",
		"director_approver_id": "` + directorID + `"
	}`
	rec := do(t, h.CreateRequest, http.MethodPost, "/v1/requests", staffID, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decodeErr(t, rec)
	if len(resp.Details) == 0 || resp.Details[0].Field != "end_date" {
		t.Fatalf("details = %+v", resp.Details)
	}
}

func TestCreateRequest_NoActor(t *testing.T) {
	h := newRequestHandler(&requestmock.Repo{})

	rec := do(t, h.CreateRequest, http.MethodPost, "/v1/requests", "", `{}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetRequest_NotFound(t *testing.T) {
	h := newRequestHandler(&requestmock.Repo{})

	rec := do(t, h.GetRequest, http.MethodGet, "/v1/requests/x", staffID, "",
		"request_id", "cccccccccccccccccccccccccccccccc")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestWithdrawRequest_Forbidden(t *testing.T) {
	repo := &requestmock.Repo{
		GetByRequestIDForUpdateFn: func(context.Context, string) (*domain.ServiceRequest, error) {
			return &domain.ServiceRequest{
				RequestID:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
				EmployeeID: staffID,
				Status:     domain.StatusPending,
			}, nil
		},
	}
	h := newRequestHandler(repo)

	rec := do(t, h.WithdrawRequest, http.MethodDelete, "/v1/requests/x", managerID, "",
		"request_id", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestWithdrawRequest_NoContent(t *testing.T) {
	repo := &requestmock.Repo{
		GetByRequestIDForUpdateFn: func(context.Context, string) (*domain.ServiceRequest, error) {
			return &domain.ServiceRequest{
				RequestID:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
				EmployeeID: staffID,
				Status:     domain.StatusPending,
			}, nil
		},
	}
	h := newRequestHandler(repo)

	rec := do(t, h.WithdrawRequest, http.MethodDelete, "/v1/requests/x", staffID, "",
		"request_id", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}
