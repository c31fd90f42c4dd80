package selector

import (
	"math/rand"
	"testing"
	"time"

	"github.com/standup-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func testParticipant(id string, createdAt time.Time, archived bool) entity.Participant {
	return entity.Participant{
		Base:     entity.Base{ID: id, CreatedAt: createdAt},
		Archived: archived,
	}
}

func testRound(createdAt time.Time) entity.Round {
	return entity.Round{Base: entity.Base{ID: "round", CreatedAt: createdAt}}
}

func TestAvailable_NoSelections(t *testing.T) {
	now := time.Now()
	round := testRound(now)

	participants := []entity.Participant{
		testParticipant("a", now.Add(-3*time.Hour), false),
		testParticipant("b", now.Add(-2*time.Hour), false),
		testParticipant("archived", now.Add(-2*time.Hour), true),
		testParticipant("too-new", now.Add(time.Hour), false),
	}

	available := Available(round, participants, nil)
	require.Len(t, available, 2)
	require.Equal(t, "a", available[0].ID)
	require.Equal(t, "b", available[1].ID)
}

func TestAvailable_TemporalExclusion(t *testing.T) {
	now := time.Now()
	round := testRound(now)

	// Created exactly at the round start is excluded as well.
	participants := []entity.Participant{
		testParticipant("at-start", now, false),
		testParticipant("after", now.Add(time.Second), false),
	}

	require.Empty(t, Available(round, participants, nil))
}

func TestAvailable_ArchivedToggle(t *testing.T) {
	now := time.Now()
	round := testRound(now)
	p := testParticipant("a", now.Add(-time.Hour), false)

	require.Len(t, Available(round, []entity.Participant{p}, nil), 1)

	p.Archived = true
	require.Empty(t, Available(round, []entity.Participant{p}, nil))

	p.Archived = false
	require.Len(t, Available(round, []entity.Participant{p}, nil), 1)
}

func TestAvailable_ExhaustionIsIdempotent(t *testing.T) {
	now := time.Now()
	round := testRound(now)

	participants := []entity.Participant{
		testParticipant("a", now.Add(-time.Hour), false),
		testParticipant("b", now.Add(-time.Hour), false),
	}

	selections := []entity.Selection{
		{ID: "s1", RoundID: round.ID, ParticipantID: "a"},
		{ID: "s2", RoundID: round.ID, ParticipantID: "b"},
	}

	for i := 0; i < 3; i++ {
		require.Empty(t, Available(round, participants, selections))
	}
}

func TestAvailable_DeletedSelectionReopensRound(t *testing.T) {
	now := time.Now()
	round := testRound(now)

	participants := []entity.Participant{
		testParticipant("a", now.Add(-time.Hour), false),
	}
	selections := []entity.Selection{
		{ID: "s1", RoundID: round.ID, ParticipantID: "a"},
	}

	require.Empty(t, Available(round, participants, selections))

	// Availability is stateless over the inputs, removing the selection
	// puts the participant back.
	available := Available(round, participants, nil)
	require.Len(t, available, 1)
	require.Equal(t, "a", available[0].ID)
}

func TestPick_Empty(t *testing.T) {
	picked, ok := Pick(nil, func(int) int { return 0 })
	require.False(t, ok)
	require.Nil(t, picked)
}

func TestPick_Uniformity(t *testing.T) {
	now := time.Now()
	participants := []entity.Participant{
		testParticipant("a", now.Add(-time.Hour), false),
		testParticipant("b", now.Add(-time.Hour), false),
		testParticipant("c", now.Add(-time.Hour), false),
		testParticipant("d", now.Add(-time.Hour), false),
		testParticipant("e", now.Add(-time.Hour), false),
	}

	source := rand.New(rand.NewSource(1))

	const trials = 5000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		picked, ok := Pick(participants, source.Intn)
		require.True(t, ok)
		counts[picked.ID]++
	}

	require.Len(t, counts, len(participants))

	// Chi-square goodness of fit against the uniform distribution with 4
	// degrees of freedom; 20 is far beyond the 0.1% critical value, so a
	// biased draw fails while an uniform one practically never does.
	expected := float64(trials) / float64(len(participants))
	chiSquare := 0.0
	for _, count := range counts {
		diff := float64(count) - expected
		chiSquare += diff * diff / expected
	}

	require.Less(t, chiSquare, 20.0)
}

func TestCheck_ReportsEveryViolation(t *testing.T) {
	now := time.Now()
	round := testRound(now)

	eligible := testParticipant("ok", now.Add(-time.Hour), false)
	require.NoError(t, Check(round, eligible, nil))

	archived := testParticipant("archived", now.Add(-time.Hour), true)
	err := Check(round, archived, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "archived")

	tooNew := testParticipant("too-new", now.Add(time.Hour), false)
	err = Check(round, tooNew, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "created after the round")

	selections := []entity.Selection{
		{ID: "s1", RoundID: round.ID, ParticipantID: "ok"},
	}
	err = Check(round, eligible, selections)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already selected")

	// Several broken rules are all reported at once.
	archivedAndNew := testParticipant("both", now.Add(time.Hour), true)
	err = Check(round, archivedAndNew, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "archived")
	require.Contains(t, err.Error(), "created after the round")

	var ineligible *IneligibleError
	require.ErrorAs(t, err, &ineligible)
	require.Len(t, ineligible.Violations, 2)
}
