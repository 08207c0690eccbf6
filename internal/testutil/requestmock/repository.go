package requestmock

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/rifky200804/ez-request-web/internal/domain/request"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset getters act like an empty table; unset writers succeed.
type Repo struct {
	CreateFn                  func(ctx context.Context, r *domain.ServiceRequest) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.ServiceRequest, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.ServiceRequest, error)
	SaveFn                    func(ctx context.Context, r *domain.ServiceRequest) error
	DeleteFn                  func(ctx context.Context, r *domain.ServiceRequest) error
	ListBySubmitterFn         func(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error)
	ListPendingForManagerFn   func(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error)
	ListPendingForDirectorFn  func(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error)
	ListManagerHistoryFn      func(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error)
	ListDirectorHistoryFn     func(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.ServiceRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, r *domain.ServiceRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, r *domain.ServiceRequest) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListBySubmitter(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error) {
	if m.ListBySubmitterFn != nil {
		return m.ListBySubmitterFn(ctx, employeeID, p)
	}
	return nil, nil
}

func (m *Repo) ListPendingForManager(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error) {
	if m.ListPendingForManagerFn != nil {
		return m.ListPendingForManagerFn(ctx, employeeID, p)
	}
	return nil, nil
}

func (m *Repo) ListPendingForDirector(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error) {
	if m.ListPendingForDirectorFn != nil {
		return m.ListPendingForDirectorFn(ctx, employeeID, p)
	}
	return nil, nil
}

func (m *Repo) ListManagerHistory(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error) {
	if m.ListManagerHistoryFn != nil {
		return m.ListManagerHistoryFn(ctx, employeeID, p)
	}
	return nil, nil
}

func (m *Repo) ListDirectorHistory(ctx context.Context, employeeID string, p domain.Page) ([]domain.ServiceRequest, error) {
	if m.ListDirectorHistoryFn != nil {
		return m.ListDirectorHistoryFn(ctx, employeeID, p)
	}
	return nil, nil
}
