package bracket

import (
	"time"

	"github.com/google/uuid"
)

type TournamentType string

const (
	Padel TournamentType = "PADEL"
	Touch TournamentType = "TOUCH"
)

type Tournament struct {
	ID        uuid.UUID      `db:"id"`
	OwnerID   uuid.UUID      `db:"owner_id"`
	Type      TournamentType `db:"tournament_type"`
	Name      string         `db:"name" json:"name"`
	Country   string         `db:"country"`
	City      string         `db:"city"`
	Address   *string        `db:"address"`
	Date      *time.Time     `db:"date"`
	Division  *Division      `db:"division"`
	CreatedAt time.Time      `db:"created_at"`
}

// Title is the one line heading used in listings, e.g. "MO - Spring Cup (Berlin, Germany)"
func (t *Tournament) Title() string {
	title := t.Name
	if t.Division != nil {
		title = string(*t.Division) + " - " + title
	}
	switch {
	case t.Country != "" && t.City != "":
		return title + " (" + t.City + ", " + t.Country + ")"
	case t.Country != "":
		return title + " (" + t.Country + ")"
	case t.City != "":
		return title + " (" + t.City + ")"
	}
	return title
}
