package testutils

import (
	"github.com/itbasis/go-clock"
	"github.com/mww/guess_or_mess/db"
)

// TestController bundles everything a controller can read leaderboards from
// in tests: the database in a test container and a fake of the game service
// api.
type TestController struct {
	Clock   *clock.Mock
	DB      db.DB
	fakeAPI *FakeLeaderboardServer
}

func (c *TestController) Close() {
	c.fakeAPI.Close()
}

func (c *TestController) APIURL() string {
	return c.fakeAPI.URL()
}

// APIRequests is the number of requests the fake api has served.
func (c *TestController) APIRequests() int {
	return c.fakeAPI.Requests()
}

func NewTestController(db *TestDB) *TestController {
	return &TestController{
		Clock:   db.Clock,
		DB:      db.DB,
		fakeAPI: NewFakeLeaderboardServer(),
	}
}
