package repository

import (
	"context"
	"time"

	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entity.Participant) error
	GetByID(ctx context.Context, id string) (*entity.Participant, error)
	GetList(ctx context.Context) ([]entity.Participant, error)

	// GetAvailableCandidates returns every unarchived participant created
	// strictly before the given time.
	GetAvailableCandidates(ctx context.Context, before time.Time) ([]entity.Participant, error)

	SetArchived(ctx context.Context, id string, archived bool) error

	// SetArchivedAll flips the archived flag of every participant, touching
	// at most batchSize rows per statement. It returns the number of
	// updated rows.
	SetArchivedAll(ctx context.Context, archived bool, batchSize int) (int64, error)
}

type participantRepository struct{}

func NewParticipantRepository() *participantRepository {
	return &participantRepository{}
}

func (r *participantRepository) Create(ctx context.Context, participant *entity.Participant) error {
	return xcontext.DB(ctx).Create(participant).Error
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*entity.Participant, error) {
	var result entity.Participant
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *participantRepository) GetList(ctx context.Context) ([]entity.Participant, error) {
	var result []entity.Participant
	if err := xcontext.DB(ctx).Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *participantRepository) GetAvailableCandidates(
	ctx context.Context, before time.Time,
) ([]entity.Participant, error) {
	var result []entity.Participant
	err := xcontext.DB(ctx).
		Where("archived=? AND created_at < ?", false, before).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *participantRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	tx := xcontext.DB(ctx).Model(&entity.Participant{}).
		Where("id=?", id).
		Update("archived", archived)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *participantRepository) SetArchivedAll(
	ctx context.Context, archived bool, batchSize int,
) (int64, error) {
	// One unbounded UPDATE would hold its locks for the whole table; work
	// through bounded id batches instead so concurrent selections are not
	// starved.
	var total int64
	for {
		var ids []string
		err := xcontext.DB(ctx).Model(&entity.Participant{}).
			Where("archived=?", !archived).
			Limit(batchSize).
			Pluck("id", &ids).Error
		if err != nil {
			return total, err
		}

		if len(ids) == 0 {
			return total, nil
		}

		tx := xcontext.DB(ctx).Model(&entity.Participant{}).
			Where("id IN ?", ids).
			Update("archived", archived)
		if tx.Error != nil {
			return total, tx.Error
		}

		total += tx.RowsAffected
	}
}
