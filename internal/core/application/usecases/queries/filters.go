package queries

import (
	"errands/internal/core/domain/model/workflow"

	"gorm.io/gorm"
)

// parseRequestStatusFilter validates an optional status filter. The empty
// string means "every status except MATCH_FAIL".
func parseRequestStatusFilter(raw string) (*workflow.RequestStatus, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil // no filter
	}
	status, err := workflow.ParseRequestStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func requestStatusScope(status *workflow.RequestStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db.Where("request_status <> ?", workflow.RequestMatchFail.String())
		}
		return db.Where("request_status = ?", status.String())
	}
}

func pageScope(offset, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}
}
