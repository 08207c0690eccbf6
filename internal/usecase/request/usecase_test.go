package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	employeeDomain "github.com/rifky200804/ez-request-web/internal/domain/employee"
	domain "github.com/rifky200804/ez-request-web/internal/domain/request"
	"github.com/rifky200804/ez-request-web/internal/domain/uow"
	"github.com/rifky200804/ez-request-web/internal/testutil/employeemock"
	"github.com/rifky200804/ez-request-web/internal/testutil/requestmock"
	"github.com/rifky200804/ez-request-web/internal/testutil/uowmock"
)

const (
	staffID    = "11111111-1111-4111-8111-111111111111"
	managerID  = "22222222-2222-4222-8222-222222222222"
	directorID = "33333333-3333-4333-8333-333333333333"
	adminID    = "44444444-4444-4444-8444-444444444444"
)

func directory() *employeemock.Repo {
	return employeemock.Directory(
		&employeeDomain.Employee{EmployeeID: staffID, FullName: "Bob", Role: employeeDomain.RoleStaff},
		&employeeDomain.Employee{EmployeeID: managerID, FullName: "Alice", Role: employeeDomain.RoleManager},
		&employeeDomain.Employee{EmployeeID: directorID, FullName: "Dewi", Role: employeeDomain.RoleDirector},
		&employeeDomain.Employee{EmployeeID: adminID, FullName: "Sari", Role: employeeDomain.RoleAdmin},
	)
}

func newTestUsecase(repo *requestmock.Repo) *Usecase {
	dir := directory()
	return NewUsecase(repo, dir, uowmock.New(uow.Repos{Employees: dir, Requests: repo}))
}

func strptr(s string) *string { return &s }

func dateptr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func decptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// fieldsOf flattens a ValidationError into field -> message.
func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := domain.AsValidation(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	out := map[string]string{}
	for _, f := range ve.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestCreate_StaffReimbursement(t *testing.T) {
	var created *domain.ServiceRequest
	uc := newTestUsecase(&requestmock.Repo{
		CreateFn: func(_ context.Context, sr *domain.ServiceRequest) error {
			created = sr
			return nil
		},
	})

	dto, err := uc.Create(context.Background(), CreateInput{
		SubmitterID:        staffID,
		Type:               "REIMBURSEMENT",
		Title:              "Client dinner",
		Amount:             decptr(450_000),
		ManagerApproverID:  strptr(managerID),
		DirectorApproverID: strptr(directorID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(dto.RequestID) != 32 {
		t.Fatalf("request id length = %d", len(dto.RequestID))
	}
	if dto.Status != string(domain.StatusPending) ||
		dto.ManagerStatus != string(domain.StagePending) ||
		dto.DirectorStatus != string(domain.StagePending) {
		t.Fatalf("fresh request statuses: %s/%s/%s", dto.Status, dto.ManagerStatus, dto.DirectorStatus)
	}
	if created == nil || created.ManagerApproverID == nil || *created.ManagerApproverID != managerID {
		t.Fatalf("manager approver not persisted: %+v", created)
	}
}

func TestCreate_LeaveEndBeforeStart(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{
		CreateFn: func(context.Context, *domain.ServiceRequest) error {
			t.Fatal("Create must not be called on validation failure")
			return nil
		},
	})

	_, err := uc.Create(context.Background(), CreateInput{
		SubmitterID:        staffID,
		Type:               "LEAVE",
		Title:              "Holiday",
		StartDate:          dateptr(2024, time.May, 10),
		EndDate:            dateptr(2024, time.May, 5),
		ManagerApproverID:  strptr(managerID),
		DirectorApproverID: strptr(directorID),
	})
	fields := fieldsOf(t, err)
	if fields["end_date"] != "cannot be before start date" {
		t.Fatalf("end_date error = %q", fields["end_date"])
	}
}

func TestCreate_LeaveMissingBothDates(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{})

	_, err := uc.Create(context.Background(), CreateInput{
		SubmitterID:        staffID,
		Type:               "LEAVE",
		Title:              "Holiday",
		ManagerApproverID:  strptr(managerID),
		DirectorApproverID: strptr(directorID),
	})
	fields := fieldsOf(t, err)
	// Both missing dates are reported, not just the first.
	if _, ok := fields["start_date"]; !ok {
		t.Fatalf("missing start_date error: %+v", fields)
	}
	if _, ok := fields["end_date"]; !ok {
		t.Fatalf("missing end_date error: %+v", fields)
	}
}

func TestCreate_ReimbursementWithoutAmount(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{})

	_, err := uc.Create(context.Background(), CreateInput{
		SubmitterID:        staffID,
		Type:               "REIMBURSEMENT",
		Title:              "Taxi",
		ManagerApproverID:  strptr(managerID),
		DirectorApproverID: strptr(directorID),
	})
	fields := fieldsOf(t, err)
	if _, ok := fields["amount"]; !ok {
		t.Fatalf("missing amount error: %+v", fields)
	}
}

func TestCreate_ManagerSubmissionSkipsManagerStage(t *testing.T) {
	var created *domain.ServiceRequest
	uc := newTestUsecase(&requestmock.Repo{
		CreateFn: func(_ context.Context, sr *domain.ServiceRequest) error {
			created = sr
			return nil
		},
	})

	// A stray manager approver on a manager submission is discarded.
	dto, err := uc.Create(context.Background(), CreateInput{
		SubmitterID:        managerID,
		Type:               "PROPOSAL",
		Title:              "Marketing budget",
		ManagerApproverID:  strptr(managerID),
		DirectorApproverID: strptr(directorID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.ManagerStatus != string(domain.StageNotApplicable) {
		t.Fatalf("manager_status = %s, want NA", dto.ManagerStatus)
	}
	if created.ManagerApproverID != nil {
		t.Fatalf("manager approver kept: %v", *created.ManagerApproverID)
	}
}

func TestCreate_StaffCannotSubmitProposal(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{})

	_, err := uc.Create(context.Background(), CreateInput{
		SubmitterID:        staffID,
		Type:               "PROPOSAL",
		Title:              "Big idea",
		ManagerApproverID:  strptr(managerID),
		DirectorApproverID: strptr(directorID),
	})
	fields := fieldsOf(t, err)
	if _, ok := fields["request_type"]; !ok {
		t.Fatalf("missing request_type error: %+v", fields)
	}
}

func TestCreate_StaffMissingApprovers(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{})

	_, err := uc.Create(context.Background(), CreateInput{
		SubmitterID: staffID,
		Type:        "REIMBURSEMENT",
		Title:       "Taxi",
		Amount:      decptr(90_000),
	})
	fields := fieldsOf(t, err)
	if fields["manager_approver_id"] != "is required" || fields["director_approver_id"] != "is required" {
		t.Fatalf("approver errors = %+v", fields)
	}
}

func TestCreate_ApproverRoleMismatch(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{})

	// Another staff member cannot sit in the manager seat, nor a
	// manager in the director seat.
	_, err := uc.Create(context.Background(), CreateInput{
		SubmitterID:        staffID,
		Type:               "REIMBURSEMENT",
		Title:              "Taxi",
		Amount:             decptr(90_000),
		ManagerApproverID:  strptr(directorID),
		DirectorApproverID: strptr(managerID),
	})
	fields := fieldsOf(t, err)
	if fields["manager_approver_id"] != "must have the MANAGER role" {
		t.Fatalf("manager_approver_id error = %q", fields["manager_approver_id"])
	}
	if fields["director_approver_id"] != "must have the DIRECTOR role" {
		t.Fatalf("director_approver_id error = %q", fields["director_approver_id"])
	}
}

func TestCreate_SelfApprovalRejected(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{})

	_, err := uc.Create(context.Background(), CreateInput{
		SubmitterID:        managerID,
		Type:               "PROPOSAL",
		Title:              "Raise for me",
		DirectorApproverID: strptr(managerID),
	})
	fields := fieldsOf(t, err)
	if fields["director_approver_id"] != "cannot be the submitter" {
		t.Fatalf("director_approver_id error = %q", fields["director_approver_id"])
	}
}

func TestCreate_DirectorsAndAdminsCannotSubmit(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{})

	for _, actor := range []string{directorID, adminID} {
		_, err := uc.Create(context.Background(), CreateInput{
			SubmitterID:        actor,
			Type:               "LEAVE",
			Title:              "Break",
			StartDate:          dateptr(2024, time.June, 1),
			EndDate:            dateptr(2024, time.June, 5),
			DirectorApproverID: strptr(directorID),
		})
		if !errors.Is(err, domain.ErrCannotSubmit) {
			t.Fatalf("actor %s: err = %v, want ErrCannotSubmit", actor, err)
		}
	}
}

func TestWithdraw(t *testing.T) {
	pending := &domain.ServiceRequest{
		RequestID:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		EmployeeID: staffID,
		Status:     domain.StatusPending,
	}
	deleted := false
	repo := &requestmock.Repo{
		GetByRequestIDForUpdateFn: func(_ context.Context, requestID string) (*domain.ServiceRequest, error) {
			return pending, nil
		},
		DeleteFn: func(_ context.Context, _ *domain.ServiceRequest) error {
			deleted = true
			return nil
		},
	}
	uc := newTestUsecase(repo)
	ctx := context.Background()

	// Someone else's request
	if err := uc.Withdraw(ctx, pending.RequestID, managerID); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("foreign withdraw: err = %v, want ErrNotOwner", err)
	}

	// Own pending request
	if err := uc.Withdraw(ctx, pending.RequestID, staffID); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if !deleted {
		t.Fatal("Delete not called")
	}

	// Processed requests are immutable
	pending.Status = domain.StatusApproved
	if err := uc.Withdraw(ctx, pending.RequestID, staffID); !errors.Is(err, domain.ErrNotPending) {
		t.Fatalf("processed withdraw: err = %v, want ErrNotPending", err)
	}
}

// A director decision that commits just before the withdraw acquires
// the row lock must make the withdraw fail; the pending check and the
// delete see the same locked row.
func TestWithdraw_RefusesAfterConcurrentDecision(t *testing.T) {
	decided := &domain.ServiceRequest{
		RequestID:      "dddddddddddddddddddddddddddddddd",
		EmployeeID:     staffID,
		Status:         domain.StatusApproved,
		ManagerStatus:  domain.StageApproved,
		DirectorStatus: domain.StageApproved,
	}
	repo := &requestmock.Repo{
		GetByRequestIDForUpdateFn: func(context.Context, string) (*domain.ServiceRequest, error) {
			return decided, nil
		},
		DeleteFn: func(context.Context, *domain.ServiceRequest) error {
			t.Fatal("Delete must not run on a processed request")
			return nil
		},
	}
	uc := newTestUsecase(repo)

	err := uc.Withdraw(context.Background(), decided.RequestID, staffID)
	if !errors.Is(err, domain.ErrNotPending) {
		t.Fatalf("err = %v, want ErrNotPending", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{})
	_, err := uc.Get(context.Background(), "cccccccccccccccccccccccccccccccc")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
