package web

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mww/guess_or_mess/config"
	"github.com/mww/guess_or_mess/controller"
	"github.com/mww/guess_or_mess/model"
	"github.com/mww/guess_or_mess/view"
	"github.com/unrolled/render"
)

const (
	// Cookie set by the game client when a player joins a game. It is only
	// ever read here.
	gameIDCookie = "gameId"

	homePath = "/"
)

type leaderboardPage struct {
	GameID    string               `json:"gameId"`
	Podium    []model.PodiumSlot   `json:"podium"`
	Remainder []model.RemainderRow `json:"remainder"`
}

func newLeaderboardPage(s view.State) *leaderboardPage {
	return &leaderboardPage{
		GameID:    s.GameID,
		Podium:    s.Leaderboard.Podium(),
		Remainder: s.Leaderboard.Remainder(),
	}
}

func rootHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "home", nil)
	}
}

// The leaderboard page never fails: without a game id, or when the players
// can't be loaded, an empty leaderboard is shown and the problem is logged.
func leaderboardHandler(ctrl controller.C, render *render.Render, logger view.Logger, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := loadLeaderboard(r, ctrl, logger, cfg.FetchTimeout)
		render.HTML(w, http.StatusOK, "leaderboard", newLeaderboardPage(state))
	}
}

func apiLeaderboardHandler(ctrl controller.C, render *render.Render, logger view.Logger, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := loadLeaderboard(r, ctrl, logger, cfg.FetchTimeout)
		render.JSON(w, http.StatusOK, newLeaderboardPage(state))
	}
}

func backHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, homePath, http.StatusSeeOther)
	}
}

// loadLeaderboard binds a view to the game of the request and waits for it to
// settle, giving up after timeout.
func loadLeaderboard(r *http.Request, ctrl controller.C, logger view.Logger, timeout time.Duration) view.State {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	v := view.New(ctx, ctrl, logger)
	defer v.Close()

	gameID := gameIDFromRequest(r)
	select {
	case <-v.Bind(gameID):
	case <-ctx.Done():
	}

	// A fetch that failed on its own has already been logged by the view.
	if v.Pending() {
		logger.Printf("gave up waiting for the leaderboard of game %s: %v", gameID, ctx.Err())
	}
	return v.State()
}

func gameIDFromRequest(r *http.Request) string {
	c, err := r.Cookie(gameIDCookie)
	if err != nil {
		return ""
	}

	// Browser cookie libraries percent-encode values.
	v, err := url.PathUnescape(c.Value)
	if err != nil {
		v = c.Value
	}
	return strings.TrimSpace(v)
}
