package model

import (
	"time"

	"github.com/standup-lab/backend/internal/entity"
)

func ConvertParticipant(participant *entity.Participant) Participant {
	return Participant{
		ID:        participant.ID,
		Name:      participant.Name,
		Archived:  participant.Archived,
		CreatedAt: participant.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ConvertParticipants(participants []entity.Participant) []Participant {
	result := []Participant{}
	for i := range participants {
		result = append(result, ConvertParticipant(&participants[i]))
	}

	return result
}

func ConvertRound(round *entity.Round) Round {
	return Round{
		ID:        round.ID,
		CreatedAt: round.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ConvertSelection(selection *entity.Selection) Selection {
	return Selection{
		ID:            selection.ID,
		RoundID:       selection.RoundID,
		ParticipantID: selection.ParticipantID,
		CreatedAt:     selection.CreatedAt.Format(time.RFC3339Nano),
	}
}
