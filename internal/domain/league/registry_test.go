package league

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(Defaults(), nil)
	require.NoError(t, err)

	tests := []struct {
		ref      string
		wantCode string
		wantOK   bool
	}{
		{ref: "PL", wantCode: "PL", wantOK: true},
		{ref: " pl ", wantCode: "PL", wantOK: true},
		{ref: "39", wantCode: "PL", wantOK: true},
		{ref: "45", wantCode: "FAC", wantOK: true},
		{ref: "fac", wantCode: "FAC", wantOK: true},
		{ref: "99", wantOK: false},
		{ref: "SERIEA", wantOK: false},
		{ref: "", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := r.Resolve(tc.ref)
		if ok != tc.wantOK {
			t.Fatalf("resolve %q: got ok=%v want=%v", tc.ref, ok, tc.wantOK)
		}
		if ok && got.Code != tc.wantCode {
			t.Fatalf("resolve %q: got=%s want=%s", tc.ref, got.Code, tc.wantCode)
		}
	}
}

func TestRegistry_ProviderOverride(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(Defaults(), map[string]int64{"pl": 1039})
	require.NoError(t, err)

	got, ok := r.Resolve("1039")
	require.True(t, ok)
	require.Equal(t, "PL", got.Code)

	_, ok = r.Resolve("39")
	require.False(t, ok)
}

func TestRegistry_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(Defaults(), map[string]int64{"XX": 1})
	require.Error(t, err)

	_, err = NewRegistry(Defaults(), map[string]int64{"CH": 39})
	require.ErrorContains(t, err, "duplicate provider id")

	_, err = NewRegistry([]League{{Code: "PL", Name: "Premier League", Kind: KindLeague}}, nil)
	require.ErrorContains(t, err, "provider id must be > 0")
}

func TestLeague_HasTable(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(Defaults(), nil)
	require.NoError(t, err)

	fac, _ := r.Resolve("FAC")
	pl, _ := r.Resolve("PL")
	require.False(t, fac.HasTable())
	require.True(t, pl.HasTable())
	require.Len(t, r.List(), 5)
}
