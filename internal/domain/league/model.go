package league

import "fmt"

type Kind string

const (
	KindLeague Kind = "league"
	KindCup    Kind = "cup"
)

// League is one competition the scoreboard can show.
type League struct {
	Code string
	// ProviderID is the API-Football league id.
	ProviderID int64
	// CompetitionCode is the football-data.org competition code.
	CompetitionCode string
	Name            string
	Title           string
	Kind            Kind
	Logo            string
}

// HasTable reports whether the competition publishes a league table.
func (l League) HasTable() bool {
	return l.Kind != KindCup
}

func (l League) Validate() error {
	if l.Code == "" {
		return fmt.Errorf("league code is required")
	}
	if l.ProviderID <= 0 {
		return fmt.Errorf("league %s provider id must be > 0", l.Code)
	}
	if l.Name == "" {
		return fmt.Errorf("league %s name is required", l.Code)
	}
	if l.Kind != KindLeague && l.Kind != KindCup {
		return fmt.Errorf("league %s kind %q is invalid", l.Code, l.Kind)
	}

	return nil
}
