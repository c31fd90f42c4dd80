package model

type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Archived  bool   `json:"archived"`
	CreatedAt string `json:"created_at"`
}

type CreateParticipantRequest struct {
	Name string `json:"name"`
}

type CreateParticipantResponse struct {
	Participant Participant `json:"participant"`
}

type GetParticipantRequest struct {
	ID string `form:"id" json:"id"`
}

type GetParticipantResponse struct {
	Participant Participant `json:"participant"`
}

type GetListParticipantRequest struct{}

type GetListParticipantResponse struct {
	Participants []Participant `json:"participants"`
}

type SetParticipantArchivedRequest struct {
	ID       string `json:"id"`
	Archived bool   `json:"archived"`
}

type SetParticipantArchivedResponse struct{}

type SetAllParticipantsArchivedRequest struct {
	Archived bool `json:"archived"`
}

type SetAllParticipantsArchivedResponse struct {
	Updated int64 `json:"updated"`
}
