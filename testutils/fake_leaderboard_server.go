package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

// FakeLeaderboardServer serves the leaderboard api with a fixed set of games:
//   - GameID returns the players of Leaderboard(), with an incomplete entry
//   - "empty" returns an empty list
//   - "broken" returns a 500
//   - "garbage" returns a body that isn't json
//
// Any other game is not found.
type FakeLeaderboardServer struct {
	s        *httptest.Server
	requests atomic.Int32
}

func NewFakeLeaderboardServer() *FakeLeaderboardServer {
	f := &FakeLeaderboardServer{}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/games/{gameID}/leaderboard", f.leaderboardHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeLeaderboardServer) Close() {
	f.s.Close()
}

func (f *FakeLeaderboardServer) URL() string {
	return f.s.URL
}

// Requests is the number of leaderboard requests served so far.
func (f *FakeLeaderboardServer) Requests() int {
	return int(f.requests.Load())
}

func (f *FakeLeaderboardServer) leaderboardHandler(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)

	switch chi.URLParam(r, "gameID") {
	case GameID:
		// Eve joined but doesn't have a score yet.
		writeJSON(w, http.StatusOK, `[
			{"username": "Alice", "score": 100},
			{"username": "Bob", "score": 90},
			null,
			{"username": "Cara", "score": 80},
			{"username": "Dee", "score": 70},
			{"username": "Eve"}
		]`)
	case "empty":
		writeJSON(w, http.StatusOK, "[]")
	case "broken":
		writeJSON(w, http.StatusInternalServerError, `{"error": "internal"}`)
	case "garbage":
		writeJSON(w, http.StatusOK, "<html>")
	default:
		writeJSON(w, http.StatusNotFound, `{"error": "not found"}`)
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
