package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/standup-lab/backend/internal/domain/selector"
	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/internal/model"
	"github.com/standup-lab/backend/internal/repository"
	"github.com/standup-lab/backend/pkg/errorx"
	"github.com/standup-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RoundDomain interface {
	Create(context.Context, *model.CreateRoundRequest) (*model.CreateRoundResponse, error)
	Get(context.Context, *model.GetRoundRequest) (*model.GetRoundResponse, error)
	GetList(context.Context, *model.GetListRoundRequest) (*model.GetListRoundResponse, error)
	GetAvailable(context.Context, *model.GetAvailableParticipantsRequest) (*model.GetAvailableParticipantsResponse, error)
}

type roundDomain struct {
	roundRepo       repository.RoundRepository
	participantRepo repository.ParticipantRepository
	selectionRepo   repository.SelectionRepository
}

func NewRoundDomain(
	roundRepo repository.RoundRepository,
	participantRepo repository.ParticipantRepository,
	selectionRepo repository.SelectionRepository,
) *roundDomain {
	return &roundDomain{
		roundRepo:       roundRepo,
		participantRepo: participantRepo,
		selectionRepo:   selectionRepo,
	}
}

func (d *roundDomain) Create(
	ctx context.Context, req *model.CreateRoundRequest,
) (*model.CreateRoundResponse, error) {
	round := &entity.Round{Base: entity.Base{ID: uuid.NewString()}}
	if err := d.roundRepo.Create(ctx, round); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create round: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateRoundResponse{Round: model.ConvertRound(round)}, nil
}

func (d *roundDomain) Get(
	ctx context.Context, req *model.GetRoundRequest,
) (*model.GetRoundResponse, error) {
	round, available, err := d.availableOf(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	count, err := d.selectionRepo.CountByRoundID(ctx, round.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count selections: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetRoundResponse{
		Round:          model.ConvertRound(round),
		SelectionCount: count,
		AvailableCount: len(available),
		Exhausted:      len(available) == 0,
	}, nil
}

func (d *roundDomain) GetList(
	ctx context.Context, req *model.GetListRoundRequest,
) (*model.GetListRoundResponse, error) {
	rounds, err := d.roundRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of rounds: %v", err)
		return nil, errorx.Unknown
	}

	clientRounds := []model.Round{}
	for i := range rounds {
		clientRounds = append(clientRounds, model.ConvertRound(&rounds[i]))
	}

	return &model.GetListRoundResponse{Rounds: clientRounds}, nil
}

func (d *roundDomain) GetAvailable(
	ctx context.Context, req *model.GetAvailableParticipantsRequest,
) (*model.GetAvailableParticipantsResponse, error) {
	_, available, err := d.availableOf(ctx, req.RoundID)
	if err != nil {
		return nil, err
	}

	return &model.GetAvailableParticipantsResponse{
		Participants: model.ConvertParticipants(available),
		Exhausted:    len(available) == 0,
	}, nil
}

// availableOf loads the round and computes its currently available
// participants.
func (d *roundDomain) availableOf(
	ctx context.Context, roundID string,
) (*entity.Round, []entity.Participant, error) {
	round, err := d.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errorx.New(errorx.NotFound, "Not found round")
		}

		xcontext.Logger(ctx).Errorf("Cannot get round: %v", err)
		return nil, nil, errorx.Unknown
	}

	candidates, err := d.participantRepo.GetAvailableCandidates(ctx, round.CreatedAt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get candidates: %v", err)
		return nil, nil, errorx.Unknown
	}

	selections, err := d.selectionRepo.GetByRoundID(ctx, round.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get selections: %v", err)
		return nil, nil, errorx.Unknown
	}

	return round, selector.Available(*round, candidates, selections), nil
}
