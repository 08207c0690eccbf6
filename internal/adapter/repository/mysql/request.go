package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	requestDomain "github.com/rifky200804/ez-request-web/internal/domain/request"
)

const defaultPageSize = 10

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, sr *requestDomain.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(sr).Error
}

func (r *RequestRepository) Save(ctx context.Context, sr *requestDomain.ServiceRequest) error {
	return r.db.WithContext(ctx).Save(sr).Error
}

func (r *RequestRepository) Delete(ctx context.Context, sr *requestDomain.ServiceRequest) error {
	return r.db.WithContext(ctx).Delete(sr).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.ServiceRequest, error) {
	var out requestDomain.ServiceRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

// GetByRequestIDForUpdate takes a row lock so concurrent stage
// decisions serialize; exactly one wins, the loser sees the already
// decided stage.
func (r *RequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.ServiceRequest, error) {
	q := r.db.WithContext(ctx)
	// sqlite has no SELECT ... FOR UPDATE; its single-writer lock
	// already serializes transactions.
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out requestDomain.ServiceRequest
	res := q.Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func paginate(q *gorm.DB, p requestDomain.Page) *gorm.DB {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	return q.Limit(limit).Offset(p.Offset)
}

func (r *RequestRepository) ListBySubmitter(ctx context.Context, employeeID string, p requestDomain.Page) ([]requestDomain.ServiceRequest, error) {
	var out []requestDomain.ServiceRequest
	res := paginate(r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC"), p).
		Find(&out)
	return out, res.Error
}

// ListPendingForManager: oldest submission first, FIFO fairness.
func (r *RequestRepository) ListPendingForManager(ctx context.Context, employeeID string, p requestDomain.Page) ([]requestDomain.ServiceRequest, error) {
	var out []requestDomain.ServiceRequest
	res := paginate(r.db.WithContext(ctx).
		Where("manager_approver_id = ? AND manager_status = ?", employeeID, requestDomain.StagePending).
		Order("created_at ASC, id ASC"), p).
		Find(&out)
	return out, res.Error
}

// ListPendingForDirector surfaces only requests the director can act
// on right now: their own director stage pending AND the manager stage
// approved, NA, or absent.
func (r *RequestRepository) ListPendingForDirector(ctx context.Context, employeeID string, p requestDomain.Page) ([]requestDomain.ServiceRequest, error) {
	var out []requestDomain.ServiceRequest
	res := paginate(r.db.WithContext(ctx).
		Where("director_approver_id = ? AND director_status = ?", employeeID, requestDomain.StagePending).
		Where("(manager_status IN ? OR manager_approver_id IS NULL)",
			[]requestDomain.StageStatus{requestDomain.StageApproved, requestDomain.StageNotApplicable}).
		Order("created_at ASC, id ASC"), p).
		Find(&out)
	return out, res.Error
}

func (r *RequestRepository) ListManagerHistory(ctx context.Context, employeeID string, p requestDomain.Page) ([]requestDomain.ServiceRequest, error) {
	var out []requestDomain.ServiceRequest
	res := paginate(r.db.WithContext(ctx).
		Where("manager_approver_id = ? AND manager_status <> ?", employeeID, requestDomain.StagePending).
		Order("updated_at DESC, id DESC"), p).
		Find(&out)
	return out, res.Error
}

func (r *RequestRepository) ListDirectorHistory(ctx context.Context, employeeID string, p requestDomain.Page) ([]requestDomain.ServiceRequest, error) {
	var out []requestDomain.ServiceRequest
	res := paginate(r.db.WithContext(ctx).
		Where("director_approver_id = ? AND director_status <> ?", employeeID, requestDomain.StagePending).
		Order("updated_at DESC, id DESC"), p).
		Find(&out)
	return out, res.Error
}
