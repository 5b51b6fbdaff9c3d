package config

import (
	"flag"
	"os"
	"time"

	"github.com/xingou/family-health-mcp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   family group name
//	-l string   directory listing base URL
//	-m string   metrics URL template ({uid}, {days} placeholders)
//	-q string   retrieval endpoint URL
//	-t int      outbound HTTP timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-l", "-m", "-q", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.FamilyName, "f", config.FamilyName, "family group name")
	fs.StringVar(&config.DirectoryBaseURL, "l", config.DirectoryBaseURL, "directory listing base URL")
	fs.StringVar(&config.MetricsURLTemplate, "m", config.MetricsURLTemplate, "metrics URL template")
	fs.StringVar(&config.RetrievalURL, "q", config.RetrievalURL, "retrieval endpoint URL")

	timeoutSeconds := fs.Int("t", int(config.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.HTTPTimeout = time.Duration(*timeoutSeconds) * time.Second
}
