package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/internal/model"
	"github.com/standup-lab/backend/internal/repository"
	"github.com/standup-lab/backend/pkg/errorx"
	"github.com/standup-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ParticipantDomain interface {
	Create(context.Context, *model.CreateParticipantRequest) (*model.CreateParticipantResponse, error)
	Get(context.Context, *model.GetParticipantRequest) (*model.GetParticipantResponse, error)
	GetList(context.Context, *model.GetListParticipantRequest) (*model.GetListParticipantResponse, error)
	SetArchived(context.Context, *model.SetParticipantArchivedRequest) (*model.SetParticipantArchivedResponse, error)
	SetAllArchived(context.Context, *model.SetAllParticipantsArchivedRequest) (*model.SetAllParticipantsArchivedResponse, error)
}

type participantDomain struct {
	participantRepo repository.ParticipantRepository
}

func NewParticipantDomain(participantRepo repository.ParticipantRepository) *participantDomain {
	return &participantDomain{participantRepo: participantRepo}
}

func (d *participantDomain) Create(
	ctx context.Context, req *model.CreateParticipantRequest,
) (*model.CreateParticipantResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	participant := &entity.Participant{
		Base: entity.Base{ID: uuid.NewString()},
		Name: name,
	}

	if err := d.participantRepo.Create(ctx, participant); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create participant: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateParticipantResponse{
		Participant: model.ConvertParticipant(participant),
	}, nil
}

func (d *participantDomain) Get(
	ctx context.Context, req *model.GetParticipantRequest,
) (*model.GetParticipantResponse, error) {
	participant, err := d.participantRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetParticipantResponse{
		Participant: model.ConvertParticipant(participant),
	}, nil
}

func (d *participantDomain) GetList(
	ctx context.Context, req *model.GetListParticipantRequest,
) (*model.GetListParticipantResponse, error) {
	participants, err := d.participantRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of participants: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetListParticipantResponse{
		Participants: model.ConvertParticipants(participants),
	}, nil
}

func (d *participantDomain) SetArchived(
	ctx context.Context, req *model.SetParticipantArchivedRequest,
) (*model.SetParticipantArchivedResponse, error) {
	if err := d.participantRepo.SetArchived(ctx, req.ID, req.Archived); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant")
		}

		xcontext.Logger(ctx).Errorf("Cannot archive participant: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetParticipantArchivedResponse{}, nil
}

func (d *participantDomain) SetAllArchived(
	ctx context.Context, req *model.SetAllParticipantsArchivedRequest,
) (*model.SetAllParticipantsArchivedResponse, error) {
	batchSize := xcontext.Configs(ctx).Selection.ArchiveBatchSize
	updated, err := d.participantRepo.SetArchivedAll(ctx, req.Archived, batchSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot archive all participants: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetAllParticipantsArchivedResponse{Updated: updated}, nil
}
