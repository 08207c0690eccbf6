package employeemock

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/rifky200804/ez-request-web/internal/domain/employee"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset methods behave like an empty table.
type Repo struct {
	CreateFn          func(ctx context.Context, e *domain.Employee) error
	GetByEmployeeIDFn func(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListFn            func(ctx context.Context, role domain.Role) ([]domain.Employee, error)
	SaveFn            func(ctx context.Context, e *domain.Employee) error
	DeleteFn          func(ctx context.Context, employeeID string) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if m.GetByEmployeeIDFn != nil {
		return m.GetByEmployeeIDFn(ctx, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, role domain.Role) ([]domain.Employee, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, role)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Employee) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, employeeID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, employeeID)
	}
	return nil
}

// Directory returns a Repo backed by a fixed set of employees, keyed
// by public id. Handy for approver-lookup heavy tests.
func Directory(list ...*domain.Employee) *Repo {
	byID := make(map[string]*domain.Employee, len(list))
	for _, e := range list {
		byID[e.EmployeeID] = e
	}
	return &Repo{
		GetByEmployeeIDFn: func(_ context.Context, employeeID string) (*domain.Employee, error) {
			if e, ok := byID[employeeID]; ok {
				return e, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		ListFn: func(_ context.Context, role domain.Role) ([]domain.Employee, error) {
			var out []domain.Employee
			for _, e := range list {
				if role == "" || e.Role == role {
					out = append(out, *e)
				}
			}
			return out, nil
		},
	}
}
