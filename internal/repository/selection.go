package repository

import (
	"context"

	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SelectionRepository interface {
	// Create inserts the selection. When the (round, participant) pair
	// already exists the database rejects the row and the error surfaces
	// as gorm.ErrDuplicatedKey.
	Create(ctx context.Context, selection *entity.Selection) error

	GetByID(ctx context.Context, id string) (*entity.Selection, error)
	GetByRoundID(ctx context.Context, roundID string) ([]entity.Selection, error)
	CountByRoundID(ctx context.Context, roundID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type selectionRepository struct{}

func NewSelectionRepository() *selectionRepository {
	return &selectionRepository{}
}

func (r *selectionRepository) Create(ctx context.Context, selection *entity.Selection) error {
	return xcontext.DB(ctx).Create(selection).Error
}

func (r *selectionRepository) GetByID(ctx context.Context, id string) (*entity.Selection, error) {
	var result entity.Selection
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *selectionRepository) GetByRoundID(ctx context.Context, roundID string) ([]entity.Selection, error) {
	var result []entity.Selection
	err := xcontext.DB(ctx).
		Where("round_id=?", roundID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *selectionRepository) CountByRoundID(ctx context.Context, roundID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Selection{}).
		Where("round_id=?", roundID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *selectionRepository) Delete(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Selection{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
