package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	// List returns employees, optionally filtered by role ("" = all).
	List(ctx context.Context, role Role) ([]Employee, error)
	Save(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, employeeID string) error
}
