package model

import (
	"fmt"
)

const PointsLabel = "pts"

// Player is a single entry of a game's leaderboard. The username is used as
// the identity of the player when rendering.
type Player struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

func (p *Player) FormattedScore() string {
	return FormatPoints(p.Score)
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Username, p.FormattedScore())
}

func FormatPoints(score int) string {
	return fmt.Sprintf("%d %s", score, PointsLabel)
}

// FilterPlayers drops the nil entries of a raw leaderboard result. The order
// of the remaining players is kept, and the result is never nil.
func FilterPlayers(raw []*Player) []Player {
	result := make([]Player, 0, len(raw))
	for _, p := range raw {
		if p == nil {
			continue
		}
		result = append(result, *p)
	}
	return result
}
