package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/autorace"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Scraper   autorace.RaceScraper
	Converter autorace.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL   string        `name:"base-url" env:"AUTORACE_BASE_URL" default:"${default_base_url}" help:"Site root that race pages are served from"`
	Timeout   time.Duration `env:"AUTORACE_TIMEOUT" default:"10s" help:"HTTP request timeout"`
	UserAgent string        `name:"user-agent" env:"AUTORACE_USER_AGENT" help:"User-Agent header for requests"`
	RPS       float64       `name:"rps" env:"AUTORACE_RPS" default:"1" help:"Maximum requests per second to the race site (0 disables limiting)"`
	Verbose   bool          `short:"v" help:"Log fetches and scrapes to stderr"`

	Race RaceCmd `cmd:"" help:"Scrape a single race"`
	Day  DayCmd  `cmd:"" help:"Scrape every race at a circuit on one day"`
	Date DateCmd `cmd:"" help:"Print a race date in YYYYMMDD form"`
}

// OutputFlags selects how scraped races are written.
type OutputFlags struct {
	Format string `short:"f" enum:"text,json,yaml,csv,markdown,html" default:"text" help:"Output format (text, json, yaml, csv, markdown, html)"`
	Output string `short:"o" type:"path" help:"Write output to a file instead of stdout"`
}

// RaceCmd is the "race" subcommand.
type RaceCmd struct {
	Date    string      `arg:"" help:"Race date (YYYYMMDD, YYYY-MM-DD or YYYY/MM/DD)"`
	Circuit int         `arg:"" help:"Circuit number"`
	Number  int         `arg:"" name:"race" help:"Race number (1-12)"`
	Output  OutputFlags `embed:""`
}

// DayCmd is the "day" subcommand.
type DayCmd struct {
	Date    string      `arg:"" help:"Race date (YYYYMMDD, YYYY-MM-DD or YYYY/MM/DD)"`
	Circuit int         `arg:"" help:"Circuit number"`
	From    int         `default:"1" help:"First race number"`
	To      int         `default:"12" help:"Last race number"`
	Output  OutputFlags `embed:""`
}

// DateCmd is the "date" subcommand.
type DateCmd struct {
	Date string `arg:"" help:"Date to normalize"`
}
