package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ytcomb"
	"ytcomb/config"
	"ytcomb/progress"
	"ytcomb/resolve"
	"ytcomb/retry"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "harvest":
		cmdHarvest(args)
	case "resolve":
		cmdResolve(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Assume a bare handle: ytcomb @somecreator
		cmdHarvest(os.Args[1:])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytcomb - YouTube channel comment harvester

Usage:
  ytcomb harvest [flags] <handle>   Harvest every comment from a channel
  ytcomb resolve [flags] <handle>   Print the channel id for a handle
  ytcomb help                       Show this help message

Examples:
  ytcomb @somecreator                          # Harvest (default command)
  ytcomb harvest -o out.json @somecreator      # Custom output path
  ytcomb harvest -rps 2 @somecreator           # Gentler API pacing
  ytcomb resolve @somecreator                  # Handle to channel id

For help on specific command: ytcomb <command> -h
`)
}

func cmdHarvest(args []string) {
	fs := flag.NewFlagSet("harvest", flag.ExitOnError)
	secret := fs.String("secret", "", "Path to the OAuth client secret JSON (default from config)")
	cache := fs.String("cache", "", "Path to the cached OAuth token (default from config)")
	output := fs.String("o", "", "Path of the JSON export (default from config)")
	rps := fs.Float64("rps", 0, "Data API requests per second (default from config)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcomb harvest [flags] <handle>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel handle\n")
		fs.Usage()
		os.Exit(1)
	}
	handle := argv[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *secret != "" {
		cfg.ClientSecretFile = *secret
	}
	if *cache != "" {
		cfg.TokenCacheFile = *cache
	}
	if *output != "" {
		cfg.OutputFile = *output
	}
	if *rps > 0 {
		cfg.RequestsPerSecond = *rps
	}

	rc := retry.DefaultConfig()
	rc.MaxRetries = cfg.MaxRetries
	rc.InitialBackoff = cfg.InitialBackoff
	rc.MaxBackoff = cfg.MaxBackoff
	rc.Multiplier = cfg.BackoffMultiplier

	fmt.Fprintf(os.Stderr, "Harvesting comments for %s...\n", handle)
	err = ytcomb.HarvestChannel(context.Background(), ytcomb.HarvestOptions{
		Handle:            handle,
		ClientSecretFile:  cfg.ClientSecretFile,
		TokenCacheFile:    cfg.TokenCacheFile,
		OutputFile:        cfg.OutputFile,
		LookupBaseURL:     cfg.LookupBaseURL,
		RequestsPerSecond: cfg.RequestsPerSecond,
		HTTPTimeout:       cfg.HTTPTimeout,
		Retry:             &rc,
		Progress:          progress.New(os.Stderr),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	baseURL := fs.String("url", "", "Base URL of the handle lookup service (default from config)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcomb resolve [flags] <handle>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel handle\n")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.LookupBaseURL = *baseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	resolver := &resolve.Resolver{BaseURL: cfg.LookupBaseURL}
	channelID, err := resolver.ResolveHandle(ctx, argv[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(channelID)
}
