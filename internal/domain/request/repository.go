package request

import "context"

// Page bounds list queries. Zero Limit means the repository default.
type Page struct {
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, r *ServiceRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*ServiceRequest, error)
	// GetByRequestIDForUpdate locks the row for the enclosing
	// transaction; approval transitions go through this.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*ServiceRequest, error)
	Save(ctx context.Context, r *ServiceRequest) error
	Delete(ctx context.Context, r *ServiceRequest) error

	// Submitter's own requests, newest first.
	ListBySubmitter(ctx context.Context, employeeID string, p Page) ([]ServiceRequest, error)

	// Queue projections. Pending lists are oldest-created-first;
	// history lists are newest-updated-first.
	ListPendingForManager(ctx context.Context, employeeID string, p Page) ([]ServiceRequest, error)
	ListPendingForDirector(ctx context.Context, employeeID string, p Page) ([]ServiceRequest, error)
	ListManagerHistory(ctx context.Context, employeeID string, p Page) ([]ServiceRequest, error)
	ListDirectorHistory(ctx context.Context, employeeID string, p Page) ([]ServiceRequest, error)
}
