package repository

import (
	"testing"

	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_participantRepository_GetAvailableCandidates(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	participantRepo := NewParticipantRepository()

	// Participant5 was created after Round1 and must not show up.
	candidates, err := participantRepo.GetAvailableCandidates(ctx, testutil.Round1.CreatedAt)
	require.NoError(t, err)
	require.Len(t, candidates, 4)
	for _, candidate := range candidates {
		require.NotEqual(t, testutil.Participant5.ID, candidate.ID)
	}

	// Archiving removes a candidate, unarchiving brings it back.
	require.NoError(t, participantRepo.SetArchived(ctx, testutil.Participant1.ID, true))
	candidates, err = participantRepo.GetAvailableCandidates(ctx, testutil.Round1.CreatedAt)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	require.NoError(t, participantRepo.SetArchived(ctx, testutil.Participant1.ID, false))
	candidates, err = participantRepo.GetAvailableCandidates(ctx, testutil.Round1.CreatedAt)
	require.NoError(t, err)
	require.Len(t, candidates, 4)
}

func Test_participantRepository_GetByID(t *testing.T) {
	ctx := testutil.MockContext()

	participant, err := testutil.SampleParticipant(ctx, &entity.Participant{Name: "grace"})
	require.NoError(t, err)

	participantRepo := NewParticipantRepository()

	got, err := participantRepo.GetByID(ctx, participant.ID)
	require.NoError(t, err)
	require.Equal(t, "grace", got.Name)

	_, err = participantRepo.GetByID(ctx, "no-such-participant")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_participantRepository_SetArchived_NotFound(t *testing.T) {
	ctx := testutil.MockContext()

	err := NewParticipantRepository().SetArchived(ctx, "no-such-participant", true)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_participantRepository_SetArchivedAll_Batches(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	participantRepo := NewParticipantRepository()

	// Five fixture participants, batch size two: three batches.
	updated, err := participantRepo.SetArchivedAll(ctx, true, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, updated)

	candidates, err := participantRepo.GetAvailableCandidates(ctx, testutil.Round1.CreatedAt)
	require.NoError(t, err)
	require.Empty(t, candidates)

	// Already archived rows are not touched again.
	updated, err = participantRepo.SetArchivedAll(ctx, true, 2)
	require.NoError(t, err)
	require.EqualValues(t, 0, updated)

	updated, err = participantRepo.SetArchivedAll(ctx, false, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, updated)
}
