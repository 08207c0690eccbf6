package request

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rifky200804/ez-request-web/internal/domain/employee"
	domain "github.com/rifky200804/ez-request-web/internal/domain/request"
	"github.com/rifky200804/ez-request-web/internal/domain/uow"
	"github.com/rifky200804/ez-request-web/pkg/id"
)

type Usecase struct {
	requests  domain.Repository
	employees employee.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(requests domain.Repository, employees employee.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{requests: requests, employees: employees, uow: tx}
}

// Create builds a new service request for the submitter. Staff must
// name both approvers; manager submitters skip the manager stage
// entirely (manager_status = NA). All field problems are collected
// into one ValidationError.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	submitter, err := u.employees.GetByEmployeeID(ctx, in.SubmitterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	if !submitter.CanSubmit() {
		return nil, domain.ErrCannotSubmit
	}

	ve := &domain.ValidationError{}

	reqType := domain.Type(in.Type)
	if !reqType.Valid() {
		ve.Add("request_type", "is invalid")
	}
	if in.Title == "" {
		ve.Add("title", "is required")
	}

	switch reqType {
	case domain.TypeReimbursement:
		if in.Amount == nil || in.Amount.IsZero() {
			ve.Add("amount", "is required for reimbursement requests")
		} else if in.Amount.Sign() < 0 {
			ve.Add("amount", "must be positive")
		}
	case domain.TypeLeave:
		if in.StartDate == nil {
			ve.Add("start_date", "is required for leave requests")
		}
		if in.EndDate == nil {
			ve.Add("end_date", "is required for leave requests")
		}
		if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
			ve.Add("end_date", "cannot be before start date")
		}
	}

	managerID := in.ManagerApproverID
	switch submitter.Role {
	case employee.RoleStaff:
		if reqType == domain.TypeProposal {
			ve.Add("request_type", "proposal requests are not available for staff")
		}
		u.checkApprover(ctx, ve, "manager_approver_id", managerID, submitter.EmployeeID, employee.RoleManager)
	case employee.RoleManager:
		// Manager approval is not applicable to their own submissions.
		managerID = nil
	}
	u.checkApprover(ctx, ve, "director_approver_id", in.DirectorApproverID, submitter.EmployeeID, employee.RoleDirector)

	if managerID != nil && in.DirectorApproverID != nil && *managerID == *in.DirectorApproverID {
		ve.Add("director_approver_id", "must differ from the manager approver")
	}

	if !ve.Empty() {
		return nil, ve
	}

	managerStatus := domain.StagePending
	if managerID == nil {
		managerStatus = domain.StageNotApplicable
	}

	sr := &domain.ServiceRequest{
		RequestID:          id.NewID32(),
		EmployeeID:         submitter.EmployeeID,
		Type:               reqType,
		Title:              in.Title,
		Description:        in.Description,
		Amount:             in.Amount,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		AttachmentURL:      in.AttachmentURL,
		Status:             domain.StatusPending,
		ManagerStatus:      managerStatus,
		DirectorStatus:     domain.StagePending,
		ManagerApproverID:  managerID,
		DirectorApproverID: in.DirectorApproverID,
	}
	if err := u.requests.Create(ctx, sr); err != nil {
		return nil, err
	}
	return NewRequestDTO(sr), nil
}

// checkApprover validates one approver reference: present, known,
// holding the required role, and not the submitter.
func (u *Usecase) checkApprover(ctx context.Context, ve *domain.ValidationError, field string, approverID *string, submitterID string, want employee.Role) {
	if approverID == nil || *approverID == "" {
		ve.Add(field, "is required")
		return
	}
	if *approverID == submitterID {
		ve.Add(field, "cannot be the submitter")
		return
	}
	appr, err := u.employees.GetByEmployeeID(ctx, *approverID)
	if err != nil {
		ve.Add(field, "unknown employee")
		return
	}
	if appr.Role != want {
		ve.Add(field, "must have the "+string(want)+" role")
	}
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*RequestDTO, error) {
	sr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return NewRequestDTO(sr), nil
}

// ListMine returns the submitter's own requests, newest first.
func (u *Usecase) ListMine(ctx context.Context, employeeID string, p domain.Page) ([]RequestDTO, error) {
	if _, err := u.employees.GetByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	list, err := u.requests.ListBySubmitter(ctx, employeeID, p)
	if err != nil {
		return nil, err
	}
	return NewRequestDTOs(list), nil
}

// Withdraw deletes the actor's own request while it is still pending.
// Processed requests are immutable. The pending check and the delete
// run on the same locked row, so a decision committing concurrently
// either lands first (withdraw refused) or finds the request gone.
func (u *Usecase) Withdraw(ctx context.Context, requestID, actorID string) error {
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, sr *domain.ServiceRequest) error {
		if sr.EmployeeID != actorID {
			return domain.ErrNotOwner
		}
		if sr.Terminal() {
			return domain.ErrNotPending
		}
		return r.Requests.Delete(ctx, sr)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
