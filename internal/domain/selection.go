package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/standup-lab/backend/internal/domain/selector"
	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/internal/model"
	"github.com/standup-lab/backend/internal/repository"
	"github.com/standup-lab/backend/pkg/crypto"
	"github.com/standup-lab/backend/pkg/errorx"
	"github.com/standup-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SelectionDomain interface {
	Create(context.Context, *model.CreateSelectionRequest) (*model.CreateSelectionResponse, error)
	GetList(context.Context, *model.GetListSelectionRequest) (*model.GetListSelectionResponse, error)
	Delete(context.Context, *model.DeleteSelectionRequest) (*model.DeleteSelectionResponse, error)
}

type selectionDomain struct {
	roundRepo       repository.RoundRepository
	participantRepo repository.ParticipantRepository
	selectionRepo   repository.SelectionRepository
}

func NewSelectionDomain(
	roundRepo repository.RoundRepository,
	participantRepo repository.ParticipantRepository,
	selectionRepo repository.SelectionRepository,
) *selectionDomain {
	return &selectionDomain{
		roundRepo:       roundRepo,
		participantRepo: participantRepo,
		selectionRepo:   selectionRepo,
	}
}

func (d *selectionDomain) Create(
	ctx context.Context, req *model.CreateSelectionRequest,
) (*model.CreateSelectionResponse, error) {
	round, err := d.roundRepo.GetByID(ctx, req.RoundID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found round")
		}

		xcontext.Logger(ctx).Errorf("Cannot get round: %v", err)
		return nil, errorx.Unknown
	}

	if req.ParticipantID != "" {
		return d.createFor(ctx, round, req.ParticipantID)
	}

	return d.createRandom(ctx, round)
}

// createRandom computes the available set, draws uniformly, and inserts the
// selection. The unique (round, participant) index is the arbiter of
// concurrent attempts: losing a race surfaces as a duplicate key and the
// whole cycle is retried against fresh data.
func (d *selectionDomain) createRandom(
	ctx context.Context, round *entity.Round,
) (*model.CreateSelectionResponse, error) {
	maxRetry := xcontext.Configs(ctx).Selection.MaxPickRetry

	for attempt := 0; attempt <= maxRetry; attempt++ {
		candidates, err := d.participantRepo.GetAvailableCandidates(ctx, round.CreatedAt)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get candidates: %v", err)
			return nil, errorx.Unknown
		}

		selections, err := d.selectionRepo.GetByRoundID(ctx, round.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get selections: %v", err)
			return nil, errorx.Unknown
		}

		available := selector.Available(*round, candidates, selections)
		picked, ok := selector.Pick(available, crypto.RandIntn)
		if !ok {
			// Exhausted is a terminal state of the round, not an error.
			return &model.CreateSelectionResponse{Exhausted: true}, nil
		}

		selection := &entity.Selection{
			ID:            uuid.NewString(),
			RoundID:       round.ID,
			ParticipantID: picked.ID,
		}

		err = d.selectionRepo.Create(ctx, selection)
		if err == nil {
			return &model.CreateSelectionResponse{
				Selection: ptr(model.ConvertSelection(selection)),
			}, nil
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			xcontext.Logger(ctx).Debugf(
				"Lost a selection race for round %s, attempt %d", round.ID, attempt)
			continue
		}

		xcontext.Logger(ctx).Errorf("Cannot create selection: %v", err)
		return nil, errorx.Unknown
	}

	return nil, errorx.New(errorx.Unavailable,
		"Too many concurrent selections for this round, please retry")
}

// createFor persists a selection for an explicitly requested participant.
// Validation and insert run inside one short transaction so the eligibility
// read cannot go stale before the write.
func (d *selectionDomain) createFor(
	ctx context.Context, round *entity.Round, participantID string,
) (*model.CreateSelectionResponse, error) {
	participant, err := d.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	selections, err := d.selectionRepo.GetByRoundID(ctx, round.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get selections: %v", err)
		return nil, errorx.Unknown
	}

	if err := selector.Check(*round, *participant, selections); err != nil {
		return nil, errorx.New(errorx.BadRequest, "%s", err.Error())
	}

	selection := &entity.Selection{
		ID:            uuid.NewString(),
		RoundID:       round.ID,
		ParticipantID: participant.ID,
	}

	if err := d.selectionRepo.Create(ctx, selection); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists,
				"Participant was already selected in this round")
		}

		xcontext.Logger(ctx).Errorf("Cannot create selection: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.CreateSelectionResponse{
		Selection: ptr(model.ConvertSelection(selection)),
	}, nil
}

func (d *selectionDomain) GetList(
	ctx context.Context, req *model.GetListSelectionRequest,
) (*model.GetListSelectionResponse, error) {
	if _, err := d.roundRepo.GetByID(ctx, req.RoundID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found round")
		}

		xcontext.Logger(ctx).Errorf("Cannot get round: %v", err)
		return nil, errorx.Unknown
	}

	selections, err := d.selectionRepo.GetByRoundID(ctx, req.RoundID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get selections: %v", err)
		return nil, errorx.Unknown
	}

	clientSelections := []model.Selection{}
	for i := range selections {
		clientSelections = append(clientSelections, model.ConvertSelection(&selections[i]))
	}

	return &model.GetListSelectionResponse{Selections: clientSelections}, nil
}

// Delete removes a selection for good. The participant becomes available
// again for that round on the next computation.
func (d *selectionDomain) Delete(
	ctx context.Context, req *model.DeleteSelectionRequest,
) (*model.DeleteSelectionResponse, error) {
	if err := d.selectionRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found selection")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete selection: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteSelectionResponse{}, nil
}

func ptr[T any](v T) *T {
	return &v
}
