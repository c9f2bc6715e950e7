package bracket

import "github.com/google/uuid"

type Team struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Division Division  `db:"division"`
}

func (t Team) String() string {
	if t.Division == "" {
		return t.Name
	}
	return string(t.Division) + " - " + t.Name
}

type Field struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}
