package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/domain/leaguestanding"
	"github.com/riskibarqy/live-scores/internal/domain/matchdetail"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/riskibarqy/live-scores/internal/usecase"
)

type Handler struct {
	relayService      *usecase.RelayService
	scoreboardService *usecase.ScoreboardService
	liveFeed          *usecase.LiveFeed
	logger            *logging.Logger
	validator         *validator.Validate
	upgrader          websocket.Upgrader
}

// NewHandler wires the HTTP surface. liveFeed may be nil, which disables the websocket stream.
func NewHandler(
	relayService *usecase.RelayService,
	scoreboardService *usecase.ScoreboardService,
	liveFeed *usecase.LiveFeed,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		relayService:      relayService,
		scoreboardService: scoreboardService,
		liveFeed:          liveFeed,
		logger:            logger.Named("httpapi"),
		validator:         validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Origin policy is enforced by the CORS middleware configuration.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leaguePathRequest struct {
	League string `validate:"required,alphanum,max=16"`
}

type fixturePathRequest struct {
	FixtureID string `validate:"required,numeric,max=19"`
}

type relayLeagueQuery struct {
	League string `validate:"omitempty,alphanum,max=16"`
}

type relayFixtureQuery struct {
	Fixture string `validate:"required,numeric,max=19"`
}

type leagueDTO struct {
	Code       string `json:"code"`
	ProviderID int64  `json:"providerId"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Kind       string `json:"kind"`
	Logo       string `json:"logo"`
	HasTable   bool   `json:"hasTable"`
}

type teamDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest,omitempty"`
}

type fixtureStatusDTO struct {
	Short   string `json:"short"`
	Long    string `json:"long,omitempty"`
	Elapsed int    `json:"elapsed"`
}

type goalsDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type fixtureDTO struct {
	ID       int64            `json:"id"`
	Kickoff  string           `json:"kickoff"`
	Home     teamDTO          `json:"home"`
	Away     teamDTO          `json:"away"`
	Status   fixtureStatusDTO `json:"status"`
	Category string           `json:"category"`
	Goals    goalsDTO         `json:"goals"`
	Round    string           `json:"round,omitempty"`
	Venue    string           `json:"venue,omitempty"`
}

type matchDayDTO struct {
	Date     string       `json:"date"`
	Label    string       `json:"label"`
	Fixtures []fixtureDTO `json:"fixtures"`
}

type upcomingDTO struct {
	Fallback bool          `json:"fallback"`
	Days     []matchDayDTO `json:"days"`
}

type boardDTO struct {
	Mode     string       `json:"mode"`
	Live     []fixtureDTO `json:"live"`
	Results  []fixtureDTO `json:"results"`
	Upcoming upcomingDTO  `json:"upcoming"`
}

type scoreboardDTO struct {
	League    leagueDTO `json:"league"`
	Board     boardDTO  `json:"board"`
	FetchedAt string    `json:"fetchedAt"`
}

type standingRecordDTO struct {
	Played       int `json:"played"`
	Win          int `json:"win"`
	Draw         int `json:"draw"`
	Lose         int `json:"lose"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

type standingDTO struct {
	Rank        int               `json:"rank"`
	Team        teamDTO           `json:"team"`
	Points      int               `json:"points"`
	GoalsDiff   int               `json:"goalsDiff"`
	Group       string            `json:"group,omitempty"`
	Form        string            `json:"form,omitempty"`
	Description string            `json:"description,omitempty"`
	All         standingRecordDTO `json:"all"`
}

type standingsDTO struct {
	League   string        `json:"league"`
	HasTable bool          `json:"hasTable"`
	Rows     []standingDTO `json:"rows"`
}

type statisticDTO struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type teamStatisticsDTO struct {
	Team  string         `json:"team"`
	Items []statisticDTO `json:"items"`
}

type playerDTO struct {
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Number   int    `json:"number"`
}

type teamLineupDTO struct {
	Team      string      `json:"team"`
	Formation string      `json:"formation,omitempty"`
	StartXI   []playerDTO `json:"startXI"`
}

type matchDetailsDTO struct {
	FixtureID  int64               `json:"fixtureId"`
	Statistics []teamStatisticsDTO `json:"statistics"`
	Lineups    []teamLineupDTO     `json:"lineups"`
}

type liveFrameDTO struct {
	Type        string         `json:"type"`
	League      string         `json:"league"`
	Generation  uint64         `json:"generation"`
	PublishedAt string         `json:"publishedAt"`
	Error       string         `json:"error,omitempty"`
	Scoreboard  *scoreboardDTO `json:"scoreboard,omitempty"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		Code:       l.Code,
		ProviderID: l.ProviderID,
		Name:       l.Name,
		Title:      l.Title,
		Kind:       string(l.Kind),
		Logo:       l.Logo,
		HasTable:   l.HasTable(),
	}
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, f := range items {
		out = append(out, fixtureDTO{
			ID:       f.ID,
			Kickoff:  formatTime(f.Kickoff),
			Home:     teamDTO{ID: f.Home.ID, Name: f.Home.Name, Crest: f.Home.Crest},
			Away:     teamDTO{ID: f.Away.ID, Name: f.Away.Name, Crest: f.Away.Crest},
			Status:   fixtureStatusDTO{Short: f.Status.Short, Long: f.Status.Long, Elapsed: f.Status.Elapsed},
			Category: fixture.Classify(f).String(),
			Goals:    goalsDTO{Home: f.Goals.Home, Away: f.Goals.Away},
			Round:    f.Round,
			Venue:    f.Venue,
		})
	}
	return out
}

func boardToDTO(b fixture.Board) boardDTO {
	days := make([]matchDayDTO, 0, len(b.Upcoming.Days))
	for _, d := range b.Upcoming.Days {
		days = append(days, matchDayDTO{
			Date:     d.Key.String(),
			Label:    d.Label,
			Fixtures: fixturesToDTO(d.Fixtures),
		})
	}

	return boardDTO{
		Mode:     string(b.Mode),
		Live:     fixturesToDTO(b.Live),
		Results:  fixturesToDTO(b.Results),
		Upcoming: upcomingDTO{Fallback: b.Upcoming.Fallback, Days: days},
	}
}

func scoreboardToDTO(s usecase.Scoreboard) scoreboardDTO {
	return scoreboardDTO{
		League:    leagueToDTO(s.League),
		Board:     boardToDTO(s.Board),
		FetchedAt: formatTime(s.FetchedAt),
	}
}

func standingsToDTO(t leaguestanding.Table) standingsDTO {
	rows := make([]standingDTO, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, standingDTO{
			Rank:        r.Rank,
			Team:        teamDTO{ID: r.Team.ID, Name: r.Team.Name, Crest: r.Team.Logo},
			Points:      r.Points,
			GoalsDiff:   r.GoalsDiff,
			Group:       r.Group,
			Form:        r.Form,
			Description: r.Description,
			All: standingRecordDTO{
				Played:       r.All.Played,
				Win:          r.All.Win,
				Draw:         r.All.Draw,
				Lose:         r.All.Lose,
				GoalsFor:     r.All.GoalsFor,
				GoalsAgainst: r.All.GoalsAgainst,
			},
		})
	}
	return standingsDTO{League: t.LeagueCode, HasTable: t.HasTable, Rows: rows}
}

func matchDetailsToDTO(d matchdetail.Details) matchDetailsDTO {
	stats := make([]teamStatisticsDTO, 0, len(d.Statistics))
	for _, s := range d.Statistics {
		items := make([]statisticDTO, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, statisticDTO{Type: it.Type, Value: it.Value})
		}
		stats = append(stats, teamStatisticsDTO{Team: s.Team, Items: items})
	}

	lineups := make([]teamLineupDTO, 0, len(d.Lineups))
	for _, l := range d.Lineups {
		players := make([]playerDTO, 0, len(l.StartXI))
		for _, p := range l.StartXI {
			players = append(players, playerDTO{Name: p.Name, Position: p.Position, Number: p.Number})
		}
		lineups = append(lineups, teamLineupDTO{Team: l.Team, Formation: l.Formation, StartXI: players})
	}

	return matchDetailsDTO{FixtureID: d.FixtureID, Statistics: stats, Lineups: lineups}
}

func liveSnapshotToDTO(s usecase.LiveSnapshot) liveFrameDTO {
	frame := liveFrameDTO{
		Type:        "snapshot",
		League:      s.League.Code,
		Generation:  s.Generation,
		PublishedAt: formatTime(s.PublishedAt),
		Error:       s.Error,
	}
	if s.Error == "" {
		board := scoreboardToDTO(s.Scoreboard)
		frame.Scoreboard = &board
	}
	return frame
}

// formatTime keeps the upstream offset; the zero time renders empty.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
