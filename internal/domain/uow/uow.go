package uow

import (
	"context"

	"github.com/rifky200804/ez-request-web/internal/domain/employee"
	"github.com/rifky200804/ez-request-web/internal/domain/request"
)

type Repos struct {
	Employees employee.Repository
	Requests  request.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the request row first, then pass it in
	WithinRequestTx(ctx context.Context, requestID string, fn func(r Repos, sr *request.ServiceRequest) error) error
}
