// Command mock-source serves a deterministic fake ended-events feed
// with the same wire shape as the real upstream, for local development.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/versus/internal/mockfeed"
	"github.com/okian/versus/pkg/logger"
)

// Default flag values.
const (
	defaultAddr         = ":9091"
	defaultSeed         = 42
	defaultGamesPerPair = 12
	defaultPageSize     = 50
	readHeaderTimeout   = 5 * time.Second
)

func main() {
	var (
		addr         = flag.String("addr", defaultAddr, "listen address")
		seed         = flag.Int64("seed", defaultSeed, "generation seed")
		gamesPerPair = flag.Int("games", defaultGamesPerPair, "games generated per pairing")
		pageSize     = flag.Int("pagesize", defaultPageSize, "games per page response")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	feed := mockfeed.New(
		mockfeed.WithSeed(*seed),
		mockfeed.WithGamesPerPair(*gamesPerPair),
		mockfeed.WithPageSize(*pageSize),
	)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           feed.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "mock feed listening",
			logger.String("addr", *addr),
			logger.Int("gamesPerPair", *gamesPerPair),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("mock feed server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	_ = srv.Shutdown(context.Background())
}
