package runnerorderrepo

import (
	"context"
	"errors"
	"time"

	"errands/internal/adapters/out/postgres/pgerrs"
	"errands/internal/adapters/out/postgres/shopperorderrepo"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const requestEntity = "runner order request"

// GormRunnerOrderRequestRepository implements ports.RunnerOrderRequestRepository.
type GormRunnerOrderRequestRepository struct {
	db *gorm.DB
}

func NewGormRunnerOrderRequestRepository(db *gorm.DB) *GormRunnerOrderRequestRepository {
	return &GormRunnerOrderRequestRepository{db: db}
}

func (r *GormRunnerOrderRequestRepository) Add(ctx context.Context, request *runnerorder.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(request)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Translate(requestEntity, "insert", err)
	}

	return nil
}

func (r *GormRunnerOrderRequestRepository) Get(ctx context.Context, id kernel.UUID) (*runnerorder.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).First(&dto, "request_id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestId", id.String())
		}
		return nil, pgerrs.Translate(requestEntity, "select", err)
	}

	return requestToDomain(dto)
}

func (r *GormRunnerOrderRequestRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Where("request_id = ?", id.Bytes()).Delete(&RequestDTO{})
	if result.Error != nil {
		return false, pgerrs.Translate(requestEntity, "delete", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *GormRunnerOrderRequestRepository) CompareAndSetStatus(
	ctx context.Context,
	id kernel.UUID,
	edge workflow.RequestEdge,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("request_id = ? AND request_status = ?", id.Bytes(), edge.From.String()).
		Updates(map[string]any{
			"request_status": edge.To.String(),
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return pgerrs.Translate(requestEntity, "update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStatusTransitionError(requestEntity, edge.From.String(), edge.To.String())
	}

	return nil
}

// RejectSiblings fails the losing requests on a runner order along with the
// sub-orders they anchor. Sub-orders are updated first, while the request
// rows still identify them as live.
func (r *GormRunnerOrderRequestRepository) RejectSiblings(
	ctx context.Context,
	orderID, winnerID kernel.UUID,
) (int64, error) {
	if err := errors.Join(orderID.Validate(), winnerID.Validate()); err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)
	now := time.Now().UTC()
	matchFail := workflow.RequestMatchFail.String()

	losers := db.Model(&RequestDTO{}).
		Select("shopper_order_id").
		Where("order_id = ? AND request_id <> ? AND request_status <> ?",
			orderID.Bytes(), winnerID.Bytes(), matchFail)

	err := db.Model(&shopperorderrepo.ShopperOrderDTO{}).
		Where("order_id IN (?)", losers).
		Updates(map[string]any{
			"status":     workflow.OrderMatchFail.String(),
			"updated_at": now,
		}).Error
	if err != nil {
		return 0, pgerrs.Translate("shopper order", "update", err)
	}

	result := db.Model(&RequestDTO{}).
		Where("order_id = ? AND request_id <> ? AND request_status <> ?",
			orderID.Bytes(), winnerID.Bytes(), matchFail).
		Updates(map[string]any{
			"request_status": matchFail,
			"updated_at":     now,
		})
	if result.Error != nil {
		return 0, pgerrs.Translate(requestEntity, "update", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *GormRunnerOrderRequestRepository) HasMatch(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("order_id = ? AND request_status NOT IN ?", orderID.Bytes(),
			[]string{workflow.RequestRequesting.String(), workflow.RequestMatchFail.String()}).
		Count(&count).Error
	if err != nil {
		return false, pgerrs.Translate(requestEntity, "select", err)
	}

	return count > 0, nil
}
