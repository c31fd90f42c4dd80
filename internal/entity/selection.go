package entity

import "time"

// Selection pairs a round with the participant chosen for it. The record is
// immutable after creation and is deleted for real (no soft delete) so the
// unique index frees the pair again when a selection is removed.
type Selection struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time

	RoundID string `gorm:"not null;uniqueIndex:ux_selections_round_participant"`
	Round   Round  `gorm:"foreignKey:RoundID"`

	ParticipantID string      `gorm:"not null;uniqueIndex:ux_selections_round_participant"`
	Participant   Participant `gorm:"foreignKey:ParticipantID"`
}
