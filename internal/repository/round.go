package repository

import (
	"context"

	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/xcontext"
)

type RoundRepository interface {
	Create(ctx context.Context, round *entity.Round) error
	GetByID(ctx context.Context, id string) (*entity.Round, error)
	GetList(ctx context.Context) ([]entity.Round, error)
	GetLast(ctx context.Context) (*entity.Round, error)
}

type roundRepository struct{}

func NewRoundRepository() *roundRepository {
	return &roundRepository{}
}

func (r *roundRepository) Create(ctx context.Context, round *entity.Round) error {
	return xcontext.DB(ctx).Create(round).Error
}

func (r *roundRepository) GetByID(ctx context.Context, id string) (*entity.Round, error) {
	var result entity.Round
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *roundRepository) GetList(ctx context.Context) ([]entity.Round, error) {
	var result []entity.Round
	if err := xcontext.DB(ctx).Order("created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *roundRepository) GetLast(ctx context.Context) (*entity.Round, error) {
	var result entity.Round
	if err := xcontext.DB(ctx).Order("created_at DESC").Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
