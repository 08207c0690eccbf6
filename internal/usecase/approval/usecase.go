package approval

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rifky200804/ez-request-web/internal/domain/employee"
	domain "github.com/rifky200804/ez-request-web/internal/domain/request"
	"github.com/rifky200804/ez-request-web/internal/domain/uow"
	requestUC "github.com/rifky200804/ez-request-web/internal/usecase/request"
)

// Usecase routes approve/reject actions through the two-stage chain:
// manager first (unless not applicable), then director. The director's
// decision is final; a manager rejection short-circuits the chain.
type Usecase struct {
	employees employee.Repository
	requests  domain.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(employees employee.Repository, requests domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{employees: employees, requests: requests, uow: tx}
}

// Act applies one approver decision to the request's active stage.
// The whole transition runs inside a row-locking transaction, so two
// concurrent actions on the same pending stage cannot both succeed.
func (u *Usecase) Act(ctx context.Context, in ActInput) (*requestUC.RequestDTO, error) {
	if !in.Decision.Valid() {
		ve := &domain.ValidationError{}
		ve.Add("decision", "must be APPROVED or REJECTED")
		return nil, ve
	}

	actor, err := u.employees.GetByEmployeeID(ctx, in.ActorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}

	var dto *requestUC.RequestDTO
	err = u.uow.WithinRequestTx(ctx, in.RequestID, func(r uow.Repos, sr *domain.ServiceRequest) error {
		switch {
		case sr.IsManagerApprover(actor.EmployeeID):
			if err := actManager(sr, in); err != nil {
				return err
			}
		case sr.IsDirectorApprover(actor.EmployeeID):
			if err := actDirector(sr, in); err != nil {
				return err
			}
		default:
			return domain.ErrNotApprover
		}
		if err := r.Requests.Save(ctx, sr); err != nil {
			return err
		}
		dto = requestUC.NewRequestDTO(sr)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func actManager(sr *domain.ServiceRequest, in ActInput) error {
	if sr.ManagerStatus != domain.StagePending {
		return domain.ErrStageDecided
	}
	sr.ManagerStatus = domain.StageStatus(in.Decision)
	sr.AppendFeedback("Manager", in.Comment)
	if in.Decision == DecisionReject {
		// Rejection is terminal; the director stage never activates.
		sr.Status = domain.StatusRejected
	}
	return nil
}

func actDirector(sr *domain.ServiceRequest, in ActInput) error {
	if sr.DirectorStatus != domain.StagePending {
		return domain.ErrStageDecided
	}
	if sr.Terminal() {
		// Manager rejection already closed the request.
		return domain.ErrNotPending
	}
	if !sr.ManagerResolved() {
		return domain.ErrManagerPending
	}
	sr.DirectorStatus = domain.StageStatus(in.Decision)
	sr.Status = domain.Status(in.Decision)
	sr.AppendFeedback("Director", in.Comment)
	return nil
}

// ListPending returns the requests awaiting this employee's decision
// at their stage, oldest first. Non-approver roles get an empty list.
func (u *Usecase) ListPending(ctx context.Context, actorID string, p domain.Page) ([]requestUC.RequestDTO, error) {
	actor, err := u.employees.GetByEmployeeID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}

	var list []domain.ServiceRequest
	switch actor.Role {
	case employee.RoleManager:
		list, err = u.requests.ListPendingForManager(ctx, actor.EmployeeID, p)
	case employee.RoleDirector:
		list, err = u.requests.ListPendingForDirector(ctx, actor.EmployeeID, p)
	default:
		return []requestUC.RequestDTO{}, nil
	}
	if err != nil {
		return nil, err
	}
	return requestUC.NewRequestDTOs(list), nil
}

// ListHistory returns the requests this employee already decided at
// their stage, most recently updated first.
func (u *Usecase) ListHistory(ctx context.Context, actorID string, p domain.Page) ([]requestUC.RequestDTO, error) {
	actor, err := u.employees.GetByEmployeeID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}

	var list []domain.ServiceRequest
	switch actor.Role {
	case employee.RoleManager:
		list, err = u.requests.ListManagerHistory(ctx, actor.EmployeeID, p)
	case employee.RoleDirector:
		list, err = u.requests.ListDirectorHistory(ctx, actor.EmployeeID, p)
	default:
		return []requestUC.RequestDTO{}, nil
	}
	if err != nil {
		return nil, err
	}
	return requestUC.NewRequestDTOs(list), nil
}
