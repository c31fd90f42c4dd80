package entity

// Participant is someone who can be chosen to host a round. Archiving keeps
// the row but removes the participant from every future availability
// computation; the flag is non-nullable so a participant is always either
// archived or not.
type Participant struct {
	Base

	Name     string `gorm:"not null"`
	Archived bool   `gorm:"not null;default:false"`
}
