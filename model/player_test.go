package model

import (
	"reflect"
	"testing"
)

func TestFilterPlayers(t *testing.T) {
	alice := &Player{Username: "Alice", Score: 100}
	bob := &Player{Username: "Bob", Score: 90}
	cara := &Player{Username: "Cara", Score: 80}

	tests := map[string]struct {
		raw      []*Player
		expected []Player
	}{
		"nil input":     {raw: nil, expected: []Player{}},
		"only nils":     {raw: []*Player{nil, nil}, expected: []Player{}},
		"no nils":       {raw: []*Player{alice, bob}, expected: []Player{*alice, *bob}},
		"nil in middle": {raw: []*Player{alice, nil, bob, cara}, expected: []Player{*alice, *bob, *cara}},
		"nil at ends":   {raw: []*Player{nil, alice, bob, nil}, expected: []Player{*alice, *bob}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := FilterPlayers(tc.raw)
			if !reflect.DeepEqual(tc.expected, got) {
				t.Fatalf("expected: %v, got: %v", tc.expected, got)
			}

			// Filtering a second time should not change anything.
			again := make([]*Player, 0, len(got))
			for i := range got {
				again = append(again, &got[i])
			}
			if twice := FilterPlayers(again); !reflect.DeepEqual(got, twice) {
				t.Errorf("filter is not idempotent, second pass: %v", twice)
			}
		})
	}
}

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{score: 0, want: "0 pts"},
		{score: 70, want: "70 pts"},
		{score: 1250, want: "1250 pts"},
		{score: -5, want: "-5 pts"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := FormatPoints(tc.score)
			if tc.want != got {
				t.Errorf("expected: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestPlayerString(t *testing.T) {
	p := Player{Username: "Dee", Score: 70}
	if p.String() != "Dee (70 pts)" {
		t.Errorf("unexpected player string: '%s'", p.String())
	}
}
