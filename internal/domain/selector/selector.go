// Package selector implements the host selection rule: out of all known
// participants, those who are unarchived, older than the round, and not yet
// selected within it are available; one of them is drawn uniformly at
// random. The package is pure, it never touches storage.
package selector

import (
	"fmt"
	"strings"

	"github.com/standup-lab/backend/internal/entity"
)

// Rule is a single eligibility predicate. When the participant fails the
// rule, ok is false and violation names the broken constraint.
type Rule func(p entity.Participant) (ok bool, violation string)

// NotArchived rejects archived participants.
func NotArchived() Rule {
	return func(p entity.Participant) (bool, string) {
		if p.Archived {
			return false, "participant is archived"
		}
		return true, ""
	}
}

// CreatedBefore rejects participants created at or after the round started.
// Newcomers never host the round they joined during.
func CreatedBefore(round entity.Round) Rule {
	return func(p entity.Participant) (bool, string) {
		if !p.CreatedAt.Before(round.CreatedAt) {
			return false, "participant was created after the round"
		}
		return true, ""
	}
}

// NotYetSelected rejects participants already referenced by a selection of
// the round.
func NotYetSelected(selections []entity.Selection) Rule {
	selected := make(map[string]struct{}, len(selections))
	for _, s := range selections {
		selected[s.ParticipantID] = struct{}{}
	}

	return func(p entity.Participant) (bool, string) {
		if _, ok := selected[p.ID]; ok {
			return false, "participant was already selected in this round"
		}
		return true, ""
	}
}

// Rules returns the full eligibility rule set of a round.
func Rules(round entity.Round, selections []entity.Selection) []Rule {
	return []Rule{
		NotArchived(),
		CreatedBefore(round),
		NotYetSelected(selections),
	}
}

// Available filters participants through every rule of the round. An empty
// result means the round is exhausted.
func Available(
	round entity.Round,
	participants []entity.Participant,
	selections []entity.Selection,
) []entity.Participant {
	rules := Rules(round, selections)

	available := []entity.Participant{}
	for _, p := range participants {
		eligible := true
		for _, rule := range rules {
			if ok, _ := rule(p); !ok {
				eligible = false
				break
			}
		}

		if eligible {
			available = append(available, p)
		}
	}

	return available
}

// Pick draws one participant uniformly at random from available using the
// given source, which must return a uniform value in [0, n). It returns
// false when nothing is available; that is the exhausted state, not an
// error.
func Pick(available []entity.Participant, intn func(n int) int) (*entity.Participant, bool) {
	if len(available) == 0 {
		return nil, false
	}

	picked := available[intn(len(available))]
	return &picked, true
}

// IneligibleError reports why a specific participant must not be selected
// for a round. Every violated rule is listed; the caller never gets a
// substitute participant.
type IneligibleError struct {
	ParticipantID string
	Violations    []string
}

func (e *IneligibleError) Error() string {
	return fmt.Sprintf("participant %s is not eligible: %s",
		e.ParticipantID, strings.Join(e.Violations, "; "))
}

// Check validates one explicitly requested participant against every rule
// of the round.
func Check(
	round entity.Round,
	participant entity.Participant,
	selections []entity.Selection,
) error {
	var violations []string
	for _, rule := range Rules(round, selections) {
		if ok, violation := rule(participant); !ok {
			violations = append(violations, violation)
		}
	}

	if len(violations) > 0 {
		return &IneligibleError{ParticipantID: participant.ID, Violations: violations}
	}

	return nil
}
