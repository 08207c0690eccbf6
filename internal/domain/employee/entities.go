package employee

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("employee not found")

type Role string

const (
	RoleStaff    Role = "STAFF"
	RoleManager  Role = "MANAGER"
	RoleDirector Role = "DIRECTOR"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleManager, RoleDirector, RoleAdmin:
		return true
	}
	return false
}

type Employee struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (UUID)
	EmployeeID string         `gorm:"column:employee_id;type:char(36);not null;uniqueIndex:ux_employees_employee_id" json:"employee_id"`
	FullName   string         `gorm:"column:full_name;size:150;not null" json:"full_name"`
	Position   string         `gorm:"column:position;size:100" json:"position"`
	Department string         `gorm:"column:department;size:100" json:"department"`
	Phone      string         `gorm:"column:phone;size:20" json:"phone"`
	Role       Role           `gorm:"column:role;type:varchar(20);not null;default:'STAFF';index" json:"role"`
	DateHired  *time.Time     `gorm:"column:date_hired;type:date" json:"date_hired,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Employee) TableName() string { return "employees" }

// CanSubmit reports whether this employee may submit service requests.
// Directors and admins act on requests, they never open them.
func (e *Employee) CanSubmit() bool {
	return e.Role == RoleStaff || e.Role == RoleManager
}
