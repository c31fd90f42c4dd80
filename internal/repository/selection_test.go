package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_selectionRepository_Create_DuplicatedPair(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	selectionRepo := NewSelectionRepository()

	err := selectionRepo.Create(ctx, &entity.Selection{
		ID:            uuid.NewString(),
		RoundID:       testutil.Round1.ID,
		ParticipantID: testutil.Participant1.ID,
	})
	require.NoError(t, err)

	// The same pair must be rejected, even with a fresh selection id.
	err = selectionRepo.Create(ctx, &entity.Selection{
		ID:            uuid.NewString(),
		RoundID:       testutil.Round1.ID,
		ParticipantID: testutil.Participant1.ID,
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Another participant in the same round is fine.
	err = selectionRepo.Create(ctx, &entity.Selection{
		ID:            uuid.NewString(),
		RoundID:       testutil.Round1.ID,
		ParticipantID: testutil.Participant2.ID,
	})
	require.NoError(t, err)

	count, err := selectionRepo.CountByRoundID(ctx, testutil.Round1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func Test_selectionRepository_Delete_FreesThePair(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	selectionRepo := NewSelectionRepository()

	selection := &entity.Selection{
		ID:            uuid.NewString(),
		RoundID:       testutil.Round1.ID,
		ParticipantID: testutil.Participant1.ID,
	}
	require.NoError(t, selectionRepo.Create(ctx, selection))
	require.NoError(t, selectionRepo.Delete(ctx, selection.ID))

	// The delete is a real delete, the pair can be selected again.
	err := selectionRepo.Create(ctx, &entity.Selection{
		ID:            uuid.NewString(),
		RoundID:       testutil.Round1.ID,
		ParticipantID: testutil.Participant1.ID,
	})
	require.NoError(t, err)
}

func Test_selectionRepository_Delete_NotFound(t *testing.T) {
	ctx := testutil.MockContext()

	err := NewSelectionRepository().Delete(ctx, "no-such-selection")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_selectionRepository_GetByRoundID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	selectionRepo := NewSelectionRepository()

	first := &entity.Selection{
		ID:            uuid.NewString(),
		RoundID:       testutil.Round1.ID,
		ParticipantID: testutil.Participant3.ID,
	}
	require.NoError(t, selectionRepo.Create(ctx, first))

	selections, err := selectionRepo.GetByRoundID(ctx, testutil.Round1.ID)
	require.NoError(t, err)
	require.Len(t, selections, 1)
	require.Equal(t, first.ID, selections[0].ID)
	require.Equal(t, testutil.Participant3.ID, selections[0].ParticipantID)

	got, err := selectionRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)

	selections, err = selectionRepo.GetByRoundID(ctx, "no-such-round")
	require.NoError(t, err)
	require.Empty(t, selections)
}
