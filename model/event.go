package model

// Event is a single games edition held in a region. Everything past the
// host columns is optional statistics from the source dataset, hence all
// the pointer fields.
type Event struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Type    string `gorm:"not null" json:"type"`
	Year    int    `gorm:"not null" json:"year"`
	Country string `gorm:"not null" json:"country"`
	Host    string `gorm:"not null" json:"host"`

	// References region.NOC. The constraint is enforced by SQLite, creating
	// an event with an unknown code fails at insert time
	NOC string `gorm:"not null" json:"NOC"`

	Start                *string `json:"start"`
	End                  *string `json:"end"`
	Duration             *int    `json:"duration"`
	DisabilitiesIncluded *string `json:"disabilities_included"`
	Countries            *int    `json:"countries"`
	Events               *int    `json:"events"`
	Sports               *int    `json:"sports"`
	ParticipantsM        *int    `json:"participants_m"`
	ParticipantsF        *int    `json:"participants_f"`
	Participants         *int    `json:"participants"`
	Highlights           *string `json:"highlights"`
}
