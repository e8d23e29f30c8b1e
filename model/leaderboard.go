package model

import (
	"time"
)

// RemainderOffset turns an index of the remainder list into the displayed
// rank: the first player below the podium is 4th.
const RemainderOffset = PodiumSize + 1

// Leaderboard is the ranked list of players of a single game. Players are
// expected to already be sorted by descending score and are never re-sorted.
type Leaderboard struct {
	GameID  string
	Players []Player
}

type PodiumSlot struct {
	Slot   Slot      `json:"slot"`
	Rank   Rank      `json:"-"`
	Place  int       `json:"place"`
	Player Player    `json:"player"`
	Style  RankStyle `json:"style"`
}

type RemainderRow struct {
	DisplayRank int           `json:"rank"`
	Player      Player        `json:"player"`
	Delay       time.Duration `json:"-"`
}

// Podium returns the top three players in presentation order: 2nd place in
// the center slot, 1st place on the left and 3rd place on the right. Slots
// without a player are left out.
func (l *Leaderboard) Podium() []PodiumSlot {
	result := make([]PodiumSlot, 0, PodiumSize)
	for _, o := range podiumOrder {
		if int(o.rank) >= len(l.Players) {
			continue
		}
		result = append(result, PodiumSlot{
			Slot:   o.slot,
			Rank:   o.rank,
			Place:  o.rank.Place(),
			Player: l.Players[o.rank],
			Style:  o.rank.Style(),
		})
	}
	return result
}

// Remainder returns everyone ranked below the podium, in ranked order.
func (l *Leaderboard) Remainder() []RemainderRow {
	if !l.HasRemainder() {
		return []RemainderRow{}
	}

	rest := l.Players[PodiumSize:]
	result := make([]RemainderRow, 0, len(rest))
	for i, p := range rest {
		result = append(result, RemainderRow{
			DisplayRank: i + RemainderOffset,
			Player:      p,
			Delay:       time.Duration(i) * remainderStagger,
		})
	}
	return result
}

func (l *Leaderboard) HasRemainder() bool {
	return len(l.Players) > PodiumSize
}
