package domain

import (
	"testing"

	"github.com/standup-lab/backend/internal/model"
	"github.com/standup-lab/backend/internal/repository"
	"github.com/standup-lab/backend/pkg/errorx"
	"github.com/standup-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newParticipantDomain() ParticipantDomain {
	return NewParticipantDomain(repository.NewParticipantRepository())
}

func Test_participantDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()

	participantDomain := newParticipantDomain()

	resp, err := participantDomain.Create(ctx, &model.CreateParticipantRequest{
		Name: "  frank  ",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Participant.ID)
	require.Equal(t, "frank", resp.Participant.Name)
	require.False(t, resp.Participant.Archived)

	got, err := participantDomain.Get(ctx, &model.GetParticipantRequest{
		ID: resp.Participant.ID,
	})
	require.NoError(t, err)
	require.Equal(t, resp.Participant, got.Participant)
}

func Test_participantDomain_Create_EmptyName(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := newParticipantDomain().Create(ctx, &model.CreateParticipantRequest{
		Name: "   ",
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Not allow an empty name"), err)
}

func Test_participantDomain_Get_NotFound(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := newParticipantDomain().Get(ctx, &model.GetParticipantRequest{
		ID: "no-such-participant",
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found participant"), err)
}

func Test_participantDomain_SetArchived(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	participantDomain := newParticipantDomain()

	_, err := participantDomain.SetArchived(ctx, &model.SetParticipantArchivedRequest{
		ID:       testutil.Participant1.ID,
		Archived: true,
	})
	require.NoError(t, err)

	got, err := participantDomain.Get(ctx, &model.GetParticipantRequest{
		ID: testutil.Participant1.ID,
	})
	require.NoError(t, err)
	require.True(t, got.Participant.Archived)

	_, err = participantDomain.SetArchived(ctx, &model.SetParticipantArchivedRequest{
		ID:       testutil.Participant1.ID,
		Archived: false,
	})
	require.NoError(t, err)

	got, err = participantDomain.Get(ctx, &model.GetParticipantRequest{
		ID: testutil.Participant1.ID,
	})
	require.NoError(t, err)
	require.False(t, got.Participant.Archived)
}

func Test_participantDomain_SetArchived_NotFound(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := newParticipantDomain().SetArchived(ctx, &model.SetParticipantArchivedRequest{
		ID:       "no-such-participant",
		Archived: true,
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found participant"), err)
}

func Test_participantDomain_SetAllArchived(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	participantDomain := newParticipantDomain()

	// Batch size comes from the configs; the mock context keeps it small
	// so the five fixtures take several batches.
	resp, err := participantDomain.SetAllArchived(ctx, &model.SetAllParticipantsArchivedRequest{
		Archived: true,
	})
	require.NoError(t, err)
	require.EqualValues(t, 5, resp.Updated)

	list, err := participantDomain.GetList(ctx, &model.GetListParticipantRequest{})
	require.NoError(t, err)
	require.Len(t, list.Participants, 5)
	for _, p := range list.Participants {
		require.True(t, p.Archived)
	}

	resp, err = participantDomain.SetAllArchived(ctx, &model.SetAllParticipantsArchivedRequest{
		Archived: true,
	})
	require.NoError(t, err)
	require.EqualValues(t, 0, resp.Updated)
}
