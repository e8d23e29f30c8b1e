package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/mww/guess_or_mess/config"
	"github.com/mww/guess_or_mess/controller"
	"github.com/mww/guess_or_mess/model"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(cfg *config.Config, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(cfg, ctrl, render, log.Default())

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"points":  model.FormatPoints,
				"seconds": secondsFormatter,
				"offset":  offsetFormatter,
			},
		},
	})
}

// secondsFormatter formats a duration as a css time value, e.g. "0.2s".
func secondsFormatter(d time.Duration) string {
	return fmt.Sprintf("%gs", d.Seconds())
}

// offsetFormatter formats d plus ms milliseconds as a css time value. Used to
// start the inner parts of a podium slot after the slot itself.
func offsetFormatter(d time.Duration, ms int) string {
	return secondsFormatter(d + time.Duration(ms)*time.Millisecond)
}
