package league

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults are the English competitions the scoreboard ships with.
func Defaults() []League {
	return []League{
		{Code: "PL", ProviderID: 39, CompetitionCode: "PL", Name: "Premier League", Title: "Premier League 25/26", Kind: KindLeague, Logo: "assets/premier-league.png"},
		{Code: "CH", ProviderID: 40, CompetitionCode: "ELC", Name: "Championship", Title: "Championship 25/26", Kind: KindLeague, Logo: "assets/championship.png"},
		{Code: "L1", ProviderID: 41, CompetitionCode: "EL1", Name: "League One", Title: "League One 25/26", Kind: KindLeague, Logo: "assets/league-one.png"},
		{Code: "L2", ProviderID: 42, CompetitionCode: "EL2", Name: "League Two", Title: "League Two 25/26", Kind: KindLeague, Logo: "assets/league-two.png"},
		{Code: "FAC", ProviderID: 45, CompetitionCode: "FAC", Name: "FA Cup", Title: "FA Cup 25/26", Kind: KindCup, Logo: "assets/fa-cup.png"},
	}
}

// Registry resolves league references. It is immutable after construction.
type Registry struct {
	ordered    []League
	byCode     map[string]int
	byProvider map[int64]int
}

// NewRegistry builds a registry; providerIDs overrides ProviderID by league code.
func NewRegistry(leagues []League, providerIDs map[string]int64) (*Registry, error) {
	r := &Registry{
		ordered:    make([]League, 0, len(leagues)),
		byCode:     make(map[string]int, len(leagues)),
		byProvider: make(map[int64]int, len(leagues)),
	}

	for _, l := range leagues {
		l.Code = strings.ToUpper(strings.TrimSpace(l.Code))
		if id, ok := lookupOverride(providerIDs, l.Code); ok {
			l.ProviderID = id
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byCode[l.Code]; dup {
			return nil, fmt.Errorf("duplicate league code %s", l.Code)
		}
		if _, dup := r.byProvider[l.ProviderID]; dup {
			return nil, fmt.Errorf("duplicate provider id %d for league %s", l.ProviderID, l.Code)
		}

		r.byCode[l.Code] = len(r.ordered)
		r.byProvider[l.ProviderID] = len(r.ordered)
		r.ordered = append(r.ordered, l)
	}

	for code := range providerIDs {
		if _, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]; !ok {
			return nil, fmt.Errorf("provider id override for unknown league %s", code)
		}
	}

	return r, nil
}

func lookupOverride(overrides map[string]int64, code string) (int64, bool) {
	for k, v := range overrides {
		if strings.EqualFold(strings.TrimSpace(k), code) {
			return v, true
		}
	}
	return 0, false
}

// Resolve accepts a league code (any case) or its numeric provider id.
func (r *Registry) Resolve(ref string) (League, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || r == nil {
		return League{}, false
	}

	if i, ok := r.byCode[strings.ToUpper(ref)]; ok {
		return r.ordered[i], true
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if i, ok := r.byProvider[id]; ok {
			return r.ordered[i], true
		}
	}

	return League{}, false
}

func (r *Registry) List() []League {
	if r == nil {
		return nil
	}
	out := make([]League, len(r.ordered))
	copy(out, r.ordered)
	return out
}
