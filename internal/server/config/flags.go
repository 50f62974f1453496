package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   database DSN (SQLite path or postgres:// URL)
//	-g string   generation endpoint base URL
//	-p string   publishing endpoint base URL
//	-t int      endpoint client timeout, seconds
//	-k          enable scheduler catch-up for missed fires
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-g", "-p", "-t", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.GenerationBaseURL, "g", config.GenerationBaseURL, "generation endpoint base URL")
	fs.StringVar(&config.PublishingBaseURL, "p", config.PublishingBaseURL, "publishing endpoint base URL")

	httpClientTimeout := fs.Int("t", int(config.HTTPClientTimeout.Seconds()), "endpoint client timeout (in seconds)")
	fs.BoolVar(&config.SchedulerCatchUp, "k", config.SchedulerCatchUp, "run a missed scheduled fire on startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.HTTPClientTimeout = time.Duration(*httpClientTimeout) * time.Second
}
