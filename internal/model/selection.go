package model

type Selection struct {
	ID            string `json:"id"`
	RoundID       string `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	CreatedAt     string `json:"created_at"`
}

type CreateSelectionRequest struct {
	RoundID string `json:"round_id"`

	// ParticipantID forces the choice instead of drawing one at random.
	// The forced participant must still pass every eligibility rule.
	ParticipantID string `json:"participant_id"`
}

type CreateSelectionResponse struct {
	// Selection is nil when the round is exhausted.
	Selection *Selection `json:"selection,omitempty"`
	Exhausted bool       `json:"exhausted"`
}

type GetListSelectionRequest struct {
	RoundID string `form:"round_id" json:"round_id"`
}

type GetListSelectionResponse struct {
	Selections []Selection `json:"selections"`
}

type DeleteSelectionRequest struct {
	ID string `json:"id"`
}

type DeleteSelectionResponse struct{}
