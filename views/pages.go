package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AdamBeresnev/padel-rounds/internal/bracket"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/a-h/templ"
)

func esc(s string) string {
	return templ.EscapeString(s)
}

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>%s</title>`+
			`<script src="/static/htmx.min.js"></script></head><body>`, esc(title))
		if err != nil {
			return err
		}
		if user := GetUser(ctx); user != nil {
			if _, err := fmt.Fprintf(w, `<nav><span>%s</span><button hx-post="/logout">Log out</button></nav>`, esc(user.Username)); err != nil {
				return err
			}
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}

func LoginPage() templ.Component {
	return layout("Log in", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main><h1>Log in</h1>`+
			`<a href="/auth/discord">Discord</a> <a href="/auth/google">Google</a>`+
			`<form method="post" action="/auth/guest"><button type="submit">Continue as guest</button></form></main>`)
		return err
	}))
}

func Index(tournaments []bracket.Tournament) templ.Component {
	return layout("Tournaments", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<main><h1>Tournaments</h1><ul>`)
		for _, t := range tournaments {
			fmt.Fprintf(&sb, `<li><a href="/tournaments/%s">%s</a></li>`, t.ID, esc(t.Title()))
		}
		sb.WriteString(`</ul></main>`)
		_, err := io.WriteString(w, sb.String())
		return err
	}))
}

// ScoreCell renders the set pairs of a result, or a dash while the game is open
func ScoreCell(result *score.SetScore) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if result == nil || result.IsZero() {
			_, err := io.WriteString(w, `<td class="score">-</td>`)
			return err
		}
		var sb strings.Builder
		sb.WriteString(`<td class="score">`)
		for i, pair := range result.Pairs() {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, `<span class="set">%s</span>`, esc(pair))
		}
		sb.WriteString(`</td>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func TournamentView(tournament *bracket.Tournament, teams []bracket.Team, games []bracket.Game) templ.Component {
	data := PrepareScheduleData(teams, games)
	return layout(tournament.Name, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<main><h1>%s</h1>`, esc(tournament.Title())); err != nil {
			return err
		}
		if tournament.Division != nil {
			if _, err := io.WriteString(w, divisionLine(*tournament.Division)); err != nil {
				return err
			}
		}
		for _, group := range data.Groups {
			if _, err := fmt.Fprintf(w, `<section class="phase"><h2>%s</h2><table>`, esc(group.Key.String())); err != nil {
				return err
			}
			for _, g := range group.Games {
				if _, err := fmt.Fprintf(w, `<tr><td><a href="/games/%s">%s</a></td><td>%s</td>`,
					g.ID, esc(data.TeamName(g.LocalID)), esc(data.TeamName(g.VisitorID))); err != nil {
					return err
				}
				if err := ScoreCell(g.Result).Render(ctx, w); err != nil {
					return err
				}
				if _, err := io.WriteString(w, `</tr>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</table></section>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	}))
}

func divisionLine(d bracket.Division) string {
	line := d.Name()
	if gender, err := bracket.PlayerGender(d); err == nil && gender != bracket.Unknown {
		line += " (" + string(gender) + " players)"
	}
	return `<p class="division">` + esc(line) + `</p>`
}

func teamName(t *bracket.Team) string {
	if t == nil {
		return "TBD"
	}
	return t.Name
}

func GameView(game *bracket.Game, local, visitor *bracket.Team, field *bracket.Field) templ.Component {
	return layout("Game", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		fmt.Fprintf(&sb, `<main><h1>%s vs %s</h1><p class="phase">%s</p>`,
			esc(teamName(local)), esc(teamName(visitor)), esc(game.Phase.Key().String()))
		if field != nil {
			fmt.Fprintf(&sb, `<p class="field">%s</p>`, esc(field.Name))
		}
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<table><tr>`); err != nil {
			return err
		}
		if err := ScoreCell(game.Result).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</tr></table>`); err != nil {
			return err
		}
		if err := ResultForm(game).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	}))
}

// ResultForm has one input per side and set, named set_<n>_local / set_<n>_visitor
func ResultForm(game *bracket.Game) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		fmt.Fprintf(&sb, `<form hx-post="/games/%s/result" hx-target="closest main">`, game.ID)
		for n := 1; n <= score.MaxSets; n++ {
			var local, visitor string
			if game.Result != nil {
				if v, ok := game.Result.Local(n); ok {
					local = fmt.Sprint(v)
				}
				if v, ok := game.Result.Visitor(n); ok {
					visitor = fmt.Sprint(v)
				}
			}
			fmt.Fprintf(&sb, `<fieldset><legend>Set %d</legend>`+
				`<input name="set_%d_local" inputmode="numeric" value="%s">`+
				`<input name="set_%d_visitor" inputmode="numeric" value="%s"></fieldset>`,
				n, n, esc(local), n, esc(visitor))
		}
		sb.WriteString(`<button type="submit">Save result</button></form>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}
