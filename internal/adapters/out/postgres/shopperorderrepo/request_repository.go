package shopperorderrepo

import (
	"context"
	"errors"
	"time"

	"errands/internal/adapters/out/postgres/pgerrs"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

const requestEntity = "shopper order request"

// GormShopperOrderRequestRepository implements ports.ShopperOrderRequestRepository.
type GormShopperOrderRequestRepository struct {
	db *gorm.DB
}

func NewGormShopperOrderRequestRepository(db *gorm.DB) *GormShopperOrderRequestRepository {
	return &GormShopperOrderRequestRepository{db: db}
}

func (r *GormShopperOrderRequestRepository) Add(ctx context.Context, request *shopperorder.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(requestEntity, "insert", err)
	}

	return nil
}

func (r *GormShopperOrderRequestRepository) Get(ctx context.Context, id kernel.UUID) (*shopperorder.Request, error) {
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

func (r *GormShopperOrderRequestRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Where("request_id = ?", id.Bytes()).Delete(&RequestDTO{})
	if result.Error != nil {
		return false, pgerrs.Translate(requestEntity, "delete", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *GormShopperOrderRequestRepository) CompareAndSetStatus(
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

// RejectSiblings fails every request on the order except the winner.
// Requests already in MATCH_FAIL are left untouched.
func (r *GormShopperOrderRequestRepository) RejectSiblings(
	ctx context.Context,
	orderID, winnerID kernel.UUID,
) (int64, error) {
	if err := errors.Join(orderID.Validate(), winnerID.Validate()); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("order_id = ? AND request_id <> ? AND request_status <> ?",
			orderID.Bytes(), winnerID.Bytes(), workflow.RequestMatchFail.String()).
		Updates(map[string]any{
			"request_status": workflow.RequestMatchFail.String(),
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, pgerrs.Translate(requestEntity, "update", result.Error)
	}

	return result.RowsAffected, nil
}
