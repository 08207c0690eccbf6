package mysql

import (
	"context"

	"gorm.io/gorm"

	employeeDomain "github.com/rifky200804/ez-request-web/internal/domain/employee"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmployeeRepository) Save(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) List(ctx context.Context, role employeeDomain.Role) ([]employeeDomain.Employee, error) {
	q := r.db.WithContext(ctx).Order("full_name ASC, id ASC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var out []employeeDomain.Employee
	res := q.Find(&out)
	return out, res.Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&employeeDomain.Employee{}).Error
}
