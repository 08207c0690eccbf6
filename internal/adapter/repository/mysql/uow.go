package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/rifky200804/ez-request-web/internal/domain/request"
	"github.com/rifky200804/ez-request-web/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Employees: &EmployeeRepository{db: tx},
			Requests:  &RequestRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, sr *request.ServiceRequest) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Employees: &EmployeeRepository{db: tx},
			Requests:  &RequestRepository{db: tx},
		}
		// lock the request row up-front to prevent races
		sr, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, sr)
	})
}
