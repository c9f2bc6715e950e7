package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AdamBeresnev/padel-rounds/internal/bracket"
	"github.com/AdamBeresnev/padel-rounds/internal/httputil"
	"github.com/AdamBeresnev/padel-rounds/internal/middleware"
	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/AdamBeresnev/padel-rounds/internal/service"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	"github.com/AdamBeresnev/padel-rounds/views"
	"github.com/alexedwards/scs/v2"
	"github.com/araddon/dateparse"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/markbates/goth/gothic"
)

func newRouter(database *sqlx.DB, sessionManager *scs.SessionManager) http.Handler {
	tournamentStore := store.NewTournamentStore(database)
	gameStore := store.NewGameStore(database)
	userStore := store.NewUserStore(database)

	tournamentService := service.NewTournamentService(database, tournamentStore, gameStore)
	gameService := service.NewGameService(database, gameStore, tournamentStore)
	userService := service.NewUserService(userStore)

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.LoadAuthenticatedUser(sessionManager, userStore))

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		data, err := tournamentService.GetTournamentData(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httputil.FromError(w, "Failed to get tournament", err)
			return
		}
		views.Render(w, r, views.TournamentView(data.Tournament, data.Teams, data.Games))
	})

	r.Get("/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		data, err := gameService.GetGameViewData(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httputil.FromError(w, "Failed to get game", err)
			return
		}
		views.Render(w, r, views.GameView(data.Game, data.Local, data.Visitor, data.Field))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			tournaments, err := tournamentService.GetTournamentsForUser(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to get tournaments", err)
				return
			}
			views.Render(w, r, views.Index(tournaments))
		})

		r.Post("/tournaments", func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			input := service.TournamentInput{
				Name:     r.Form.Get("name"),
				Type:     bracket.TournamentType(r.Form.Get("type")),
				Country:  r.Form.Get("country"),
				City:     r.Form.Get("city"),
				Address:  r.Form.Get("address"),
				Division: bracket.Division(r.Form.Get("division")),
				Teams:    r.Form["team"],
			}
			if raw := r.Form.Get("date"); raw != "" {
				date, err := dateparse.ParseAny(raw)
				if err != nil {
					httputil.BadRequest(w, "Invalid date", err)
					return
				}
				input.Date = &date
			}

			id, err := tournamentService.CreateTournament(r.Context(), input)
			if err != nil {
				httputil.BadRequest(w, err.Error(), err)
				return
			}
			w.Header().Set("HX-Redirect", fmt.Sprintf("/tournaments/%s", id))
			w.WriteHeader(http.StatusOK)
		})

		r.Post("/tournaments/{id}/games", func(w http.ResponseWriter, r *http.Request) {
			tournamentID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid tournament ID", err)
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			// Blank phase fields take the defaults of a new phase
			phase := round.DefaultKey
			if raw := r.Form.Get("category"); raw != "" {
				phase.Category = round.Category(raw)
			}
			if raw := r.Form.Get("round"); raw != "" {
				phase.Kind = round.Kind(raw)
			}
			if raw := r.Form.Get("number_teams"); raw != "" {
				if phase.Teams, err = strconv.Atoi(raw); err != nil {
					httputil.BadRequest(w, "Invalid number of teams", err)
					return
				}
			}
			input := service.GameInput{
				TournamentID: tournamentID,
				Phase:        phase,
				Field:        r.Form.Get("field"),
				StartTime:    r.Form.Get("time"),
			}
			if input.LocalID, err = optionalUUID(r.Form.Get("local_id")); err != nil {
				httputil.BadRequest(w, "Invalid local team", err)
				return
			}
			if input.VisitorID, err = optionalUUID(r.Form.Get("visitor_id")); err != nil {
				httputil.BadRequest(w, "Invalid visitor team", err)
				return
			}

			if _, err := gameService.ScheduleGame(r.Context(), input); err != nil {
				httputil.BadRequest(w, err.Error(), err)
				return
			}
			w.Header().Set("HX-Redirect", fmt.Sprintf("/tournaments/%s", tournamentID))
			w.WriteHeader(http.StatusOK)
		})

		r.Post("/games/{id}/result", func(w http.ResponseWriter, r *http.Request) {
			gameID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid game ID", err)
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			raw := make([]string, 0, 2*score.MaxSets)
			for n := 1; n <= score.MaxSets; n++ {
				raw = append(raw, r.Form.Get(fmt.Sprintf("set_%d_local", n)), r.Form.Get(fmt.Sprintf("set_%d_visitor", n)))
			}

			if _, err := gameService.RecordPadelResult(r.Context(), gameID, raw); err != nil {
				httputil.FromError(w, "Failed to save result", err)
				return
			}

			data, err := gameService.GetGameViewData(r.Context(), gameID.String())
			if err != nil {
				httputil.InternalServerError(w, "Failed to get game", err)
				return
			}
			views.Render(w, r, views.GameView(data.Game, data.Local, data.Visitor, data.Field))
		})
	})

	r.Get("/auth/{provider}", func(w http.ResponseWriter, r *http.Request) {
		r = withProvider(r)
		gothic.BeginAuthHandler(w, r)
	})

	r.Get("/auth/{provider}/callback", func(w http.ResponseWriter, r *http.Request) {
		r = withProvider(r)

		gothUser, err := gothic.CompleteUserAuth(w, r)
		if err != nil {
			httputil.BadRequest(w, "Authentication failure", err)
			return
		}

		user, err := userService.FindOrCreateUserByProvider(r.Context(), gothUser)
		if err != nil {
			httputil.InternalServerError(w, "Failed to find or create user", err)
			return
		}

		sessionManager.Put(r.Context(), middleware.SessionUserIDKey, user.ID.String())
		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, views.LoginPage())
	})

	r.Post("/auth/guest", func(w http.ResponseWriter, r *http.Request) {
		user, err := userService.EnsureGuestUser(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to login as guest", err)
			return
		}

		sessionManager.Put(r.Context(), middleware.SessionUserIDKey, user.ID.String())
		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		sessionManager.Destroy(r.Context())
		if r.Header.Get("HX-Request") != "" {
			w.Header().Set("HX-Redirect", "/login")
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	return r
}

// gothic reads the provider from the context under this key
func withProvider(r *http.Request) *http.Request {
	provider := chi.URLParam(r, "provider")
	return r.WithContext(context.WithValue(r.Context(), gothic.ProviderParamKey, provider))
}

func optionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
