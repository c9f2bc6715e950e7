package views

import (
	"github.com/AdamBeresnev/padel-rounds/internal/bracket"
	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/google/uuid"
)

// PhaseGroup is a run of games sharing one phase
type PhaseGroup struct {
	Key   round.Key
	Games []bracket.Game
}

type ScheduleData struct {
	Groups  []PhaseGroup
	TeamMap map[uuid.UUID]bracket.Team
}

// PrepareScheduleData groups already ordered games by phase, keeping
// their order.
func PrepareScheduleData(teams []bracket.Team, games []bracket.Game) ScheduleData {
	teamMap := make(map[uuid.UUID]bracket.Team, len(teams))
	for _, t := range teams {
		teamMap[t.ID] = t
	}

	var groups []PhaseGroup
	for _, g := range games {
		key := g.Phase.Key()
		if n := len(groups); n > 0 && groups[n-1].Key == key {
			groups[n-1].Games = append(groups[n-1].Games, g)
			continue
		}
		groups = append(groups, PhaseGroup{Key: key, Games: []bracket.Game{g}})
	}

	return ScheduleData{Groups: groups, TeamMap: teamMap}
}

func (d ScheduleData) TeamName(id *uuid.UUID) string {
	if id == nil {
		return "TBD"
	}
	if t, ok := d.TeamMap[*id]; ok {
		return t.Name
	}
	return "TBD"
}
