package employee

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/rifky200804/ez-request-web/internal/domain/employee"
	"github.com/rifky200804/ez-request-web/internal/domain/request"
)

// Usecase is the Identity Directory: the leaf the approval chain
// resolves submitters and approvers against.
type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*EmployeeDTO, error) {
	ve := &request.ValidationError{}
	if in.FullName == "" {
		ve.Add("full_name", "is required")
	}
	role := domain.Role(in.Role)
	if !role.Valid() {
		ve.Add("role", "is invalid")
	}
	if !ve.Empty() {
		return nil, ve
	}

	e := &domain.Employee{
		EmployeeID: uuid.NewString(),
		FullName:   in.FullName,
		Position:   in.Position,
		Department: in.Department,
		Phone:      in.Phone,
		Role:       role,
		DateHired:  in.DateHired,
	}
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return NewEmployeeDTO(e), nil
}

func (u *Usecase) Get(ctx context.Context, employeeID string) (*EmployeeDTO, error) {
	e, err := u.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return NewEmployeeDTO(e), nil
}

// List returns employees, optionally filtered by role. The empty
// string means no filter.
func (u *Usecase) List(ctx context.Context, role string) ([]EmployeeDTO, error) {
	r := domain.Role(role)
	if role != "" && !r.Valid() {
		ve := &request.ValidationError{}
		ve.Add("role", "is invalid")
		return nil, ve
	}
	list, err := u.repo.List(ctx, r)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeDTO, 0, len(list))
	for i := range list {
		out = append(out, *NewEmployeeDTO(&list[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, employeeID string, in UpdateInput) (*EmployeeDTO, error) {
	e, err := u.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if in.Role != nil {
		role := domain.Role(*in.Role)
		if !role.Valid() {
			ve := &request.ValidationError{}
			ve.Add("role", "is invalid")
			return nil, ve
		}
		e.Role = role
	}
	if in.FullName != nil {
		e.FullName = *in.FullName
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.Department != nil {
		e.Department = *in.Department
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}

	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return NewEmployeeDTO(e), nil
}

func (u *Usecase) Delete(ctx context.Context, employeeID string) error {
	if _, err := u.repo.GetByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, employeeID)
}
