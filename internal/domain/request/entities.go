package request

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Type string

const (
	TypeProposal      Type = "PROPOSAL"
	TypeReimbursement Type = "REIMBURSEMENT"
	TypeLeave         Type = "LEAVE"
)

func (t Type) Valid() bool {
	switch t {
	case TypeProposal, TypeReimbursement, TypeLeave:
		return true
	}
	return false
}

// Status is the overall request outcome, derived from the two stages.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// StageStatus is the per-stage outcome. NA only ever applies to the
// manager stage (manager submitted, or no manager assigned).
type StageStatus string

const (
	StagePending       StageStatus = "PENDING"
	StageApproved      StageStatus = "APPROVED"
	StageRejected      StageStatus = "REJECTED"
	StageNotApplicable StageStatus = "NA"
)

type ServiceRequest struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	RequestID string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_requests_request_id" json:"request_id"`
	// Submitter (employees.employee_id)
	EmployeeID  string `gorm:"column:employee_id;type:char(36);not null;index:idx_requests_employee" json:"employee_id"`
	Type        Type   `gorm:"column:request_type;type:varchar(20);not null" json:"request_type"`
	Title       string `gorm:"column:title;size:200;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`

	// Type-specific fields
	Amount    *decimal.Decimal `gorm:"column:amount;type:decimal(12,2)" json:"amount,omitempty"`
	StartDate *time.Time       `gorm:"column:start_date;type:date" json:"start_date,omitempty"`
	EndDate   *time.Time       `gorm:"column:end_date;type:date" json:"end_date,omitempty"`

	AttachmentURL string `gorm:"column:attachment_url;type:text" json:"attachment_url,omitempty"`

	// Approval chain
	Status             Status      `gorm:"column:status;type:varchar(15);not null;default:'PENDING';index" json:"status"`
	ManagerStatus      StageStatus `gorm:"column:manager_status;type:varchar(15);not null;default:'PENDING'" json:"manager_status"`
	DirectorStatus     StageStatus `gorm:"column:director_status;type:varchar(15);not null;default:'PENDING'" json:"director_status"`
	ManagerApproverID  *string     `gorm:"column:manager_approver_id;type:char(36);index:idx_requests_manager" json:"manager_approver_id,omitempty"`
	DirectorApproverID *string     `gorm:"column:director_approver_id;type:char(36);index:idx_requests_director" json:"director_approver_id,omitempty"`

	// Rejection reasons / approval notes, one line per stage decision
	Feedback string `gorm:"column:feedback;type:text" json:"feedback,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ServiceRequest) TableName() string { return "service_requests" }

// Terminal reports whether the request reached a final outcome.
// Terminal requests are immutable.
func (r *ServiceRequest) Terminal() bool { return r.Status != StatusPending }

// ManagerResolved reports whether the manager stage no longer blocks
// the director: explicitly approved, marked NA, or no manager assigned
// (implicit NA).
func (r *ServiceRequest) ManagerResolved() bool {
	if r.ManagerStatus == StageApproved || r.ManagerStatus == StageNotApplicable {
		return true
	}
	return r.ManagerApproverID == nil
}

// IsManagerApprover reports whether employeeID is the assigned
// manager-stage approver.
func (r *ServiceRequest) IsManagerApprover(employeeID string) bool {
	return r.ManagerApproverID != nil && *r.ManagerApproverID == employeeID
}

// IsDirectorApprover reports whether employeeID is the assigned
// director-stage approver.
func (r *ServiceRequest) IsDirectorApprover(employeeID string) bool {
	return r.DirectorApproverID != nil && *r.DirectorApproverID == employeeID
}

// AppendFeedback adds one "{stage}: {comment}" line after any existing
// feedback. Empty comments leave feedback untouched at both stages.
func (r *ServiceRequest) AppendFeedback(stage, comment string) {
	if comment == "" {
		return
	}
	line := stage + ": " + comment
	if r.Feedback == "" {
		r.Feedback = line
		return
	}
	r.Feedback = r.Feedback + "\n" + line
}
