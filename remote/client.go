package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mww/guess_or_mess/model"
)

var (
	ErrGameNotFound error = errors.New("game not found")
)

// Client loads leaderboards from an external game API.
type Client interface {
	FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(baseURL string) (Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing leaderboard api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("leaderboard api url must be http or https, got: '%s'", baseURL)
	}

	c := &client{
		url: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

// remotePlayer is the wire format of a leaderboard entry. Either field may be
// missing for a player who hasn't finished joining.
type remotePlayer struct {
	Username *string `json:"username"`
	Score    *int    `json:"score"`
}

func (p *remotePlayer) toPlayer() *model.Player {
	if p == nil || p.Username == nil || *p.Username == "" || p.Score == nil {
		return nil
	}
	return &model.Player{
		Username: *p.Username,
		Score:    *p.Score,
	}
}

func (c *client) FetchLeaderboard(ctx context.Context, gameID string) ([]*model.Player, error) {
	u := fmt.Sprintf("%s/v1/games/%s/leaderboard", c.url, url.PathEscape(gameID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrGameNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed []*remotePlayer
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing leaderboard response: %w", err)
	}

	result := make([]*model.Player, 0, len(parsed))
	for _, p := range parsed {
		result = append(result, p.toPlayer())
	}
	return result, nil
}
