package model

type Round struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

type CreateRoundRequest struct{}

type CreateRoundResponse struct {
	Round Round `json:"round"`
}

type GetRoundRequest struct {
	ID string `form:"id" json:"id"`
}

type GetRoundResponse struct {
	Round          Round `json:"round"`
	SelectionCount int64 `json:"selection_count"`
	AvailableCount int   `json:"available_count"`
	Exhausted      bool  `json:"exhausted"`
}

type GetListRoundRequest struct{}

type GetListRoundResponse struct {
	Rounds []Round `json:"rounds"`
}

type GetAvailableParticipantsRequest struct {
	RoundID string `form:"round_id" json:"round_id"`
}

type GetAvailableParticipantsResponse struct {
	Participants []Participant `json:"participants"`
	Exhausted    bool          `json:"exhausted"`
}
