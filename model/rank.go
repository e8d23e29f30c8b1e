package model

import (
	"time"
)

// Rank is a podium position. The value is the index of the player in the
// ranked list, so Rank1 is the player with the highest score.
type Rank int

const (
	Rank1 Rank = iota
	Rank2
	Rank3
)

const PodiumSize = 3

const (
	podiumStagger    = 200 * time.Millisecond
	remainderStagger = 100 * time.Millisecond
)

// RankStyle is how a podium slot is drawn for a given rank.
type RankStyle struct {
	Accent       string        `json:"accent"` // trophy color
	GradientFrom string        `json:"gradientFrom"`
	GradientTo   string        `json:"gradientTo"`
	BarHeight    int           `json:"barHeight"` // pixels
	Delay        time.Duration `json:"-"`
}

var rankStyles = [PodiumSize]RankStyle{
	Rank1: {Accent: "#F1087B", GradientFrom: "#0DD6F4", GradientTo: "#F1087B", BarHeight: 256},
	Rank2: {Accent: "#7236D2", GradientFrom: "#08B9C3", GradientTo: "#7236D2", BarHeight: 192},
	Rank3: {Accent: "#F7E641", GradientFrom: "#33F3F8", GradientTo: "#F7E641", BarHeight: 128},
}

func (r Rank) Valid() bool {
	return r >= Rank1 && r <= Rank3
}

// Style returns the drawing style of the rank. The entrance delay grows with
// the rank so that the winner appears first.
func (r Rank) Style() RankStyle {
	if !r.Valid() {
		return RankStyle{}
	}
	s := rankStyles[r]
	s.Delay = time.Duration(r) * podiumStagger
	return s
}

// Place is the 1-based place shown to users.
func (r Rank) Place() int {
	return int(r) + 1
}

func (r Rank) String() string {
	switch r {
	case Rank1:
		return "1st"
	case Rank2:
		return "2nd"
	case Rank3:
		return "3rd"
	default:
		return "unranked"
	}
}

type Slot string

const (
	SlotCenter Slot = "center"
	SlotLeft   Slot = "left"
	SlotRight  Slot = "right"
)

// podiumOrder is the presentation order of the podium.
var podiumOrder = [PodiumSize]struct {
	rank Rank
	slot Slot
}{
	{rank: Rank2, slot: SlotCenter},
	{rank: Rank1, slot: SlotLeft},
	{rank: Rank3, slot: SlotRight},
}
