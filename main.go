package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/guess_or_mess/cache"
	"github.com/mww/guess_or_mess/config"
	"github.com/mww/guess_or_mess/controller"
	"github.com/mww/guess_or_mess/db"
	"github.com/mww/guess_or_mess/remote"
	"github.com/mww/guess_or_mess/web"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	source, err := newSource(cfg)
	if err != nil {
		log.Fatalf("error creating leaderboard source: %v", err)
	}

	if cfg.UseCache() {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("error parsing redis url: %v", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("cannot connect to redis: %v", err)
		}
		source = cache.New(client, source, cfg.CacheTTL, log.Default())
	}

	ctrl, err := controller.New(source)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(cfg, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// newSource picks where leaderboards come from. The game service api wins
// when both it and a database are configured.
func newSource(cfg *config.Config) (controller.Source, error) {
	if cfg.UseRemote() {
		log.Printf("reading leaderboards from %s", cfg.LeaderboardAPIURL)
		return remote.New(cfg.LeaderboardAPIURL)
	}

	d, err := db.New(context.Background(), cfg.PostgresConnString, clock.New())
	if err != nil {
		return nil, err
	}
	return d, nil
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
