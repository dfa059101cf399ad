package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Addr           string
	DBPath         string
	StaticDir      string
	InMemory       bool
	Debug          bool
	VoteWindow     time.Duration
	SessionTTL     time.Duration
	SweepInterval  time.Duration
	SnapshotPeriod time.Duration
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() *Config {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.Addr = getEnv("THERMO_ADDR", ":8080")
	cfg.DBPath = getEnv("THERMO_DB", getDefaultDBPath())
	cfg.StaticDir = getEnv("THERMO_STATIC", "./internal/adapters/web/static")
	cfg.InMemory = getEnvBool("THERMO_MEM", false)

	voteWindowMin := getEnvInt("THERMO_VOTE_WINDOW_MIN", 10)
	sessionTTLMin := getEnvInt("THERMO_SESSION_TTL_MIN", 5)
	sweepMin := getEnvInt("THERMO_SWEEP_MIN", 5)
	snapshotMin := getEnvInt("THERMO_SNAPSHOT_MIN", 10)

	// Command Line Flags (Override Env)
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	flag.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "Path to static UI assets")
	flag.BoolVar(&cfg.InMemory, "mem", cfg.InMemory, "Use the ephemeral in-memory store instead of SQLite")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable verbose debug logging")
	flag.IntVar(&voteWindowMin, "vote-window", voteWindowMin, "Recency window for vote tallies in minutes")
	flag.IntVar(&sessionTTLMin, "session-ttl", sessionTTLMin, "Session staleness threshold in minutes")
	flag.IntVar(&sweepMin, "sweep", sweepMin, "Connection sweep period in minutes")
	flag.IntVar(&snapshotMin, "snapshot", snapshotMin, "Temperature snapshot period in minutes")

	flag.Parse()

	cfg.VoteWindow = time.Duration(voteWindowMin) * time.Minute
	cfg.SessionTTL = time.Duration(sessionTTLMin) * time.Minute
	cfg.SweepInterval = time.Duration(sweepMin) * time.Minute
	cfg.SnapshotPeriod = time.Duration(snapshotMin) * time.Minute

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getDefaultDBPath returns the default database path in user's home directory.
// Creates the directory if it doesn't exist.
func getDefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory, using current dir: %v", err)
		return "thermovote.db"
	}

	dir := filepath.Join(home, ".thermovote")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Warning: Could not create .thermovote directory, using current dir: %v", err)
		return "thermovote.db"
	}

	return filepath.Join(dir, "thermovote.db")
}
