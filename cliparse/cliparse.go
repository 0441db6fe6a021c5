package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DefaultNotifyEmail is where password-change notifications go unless
// NOTIFY_EMAIL overrides it.
const DefaultNotifyEmail = "rme@catholic.edu.hk"

type Config struct {
	Port     int
	DataFile string
	FontFile string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	NotifyEmail  string
}

// ParseFlags validates flags and fills in environment fallbacks.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pollbox", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataFile, "f", "", "Poll document path")
	fs.StringVar(&cfg.FontFile, "font", "", "TTF font for PDF reports")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SMTPUser, "smtp-user", "", "SMTP username (prefer env)")
	fs.StringVar(&cfg.SMTPPassword, "smtp-pass", "", "SMTP password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8741 // default
		}
	}
	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("POLL_DATA_FILE")
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "polling_data.json"
	}
	if cfg.FontFile == "" {
		cfg.FontFile = os.Getenv("REPORT_FONT_FILE")
	}

	// Mail relay is optional; without credentials the notifier reports
	// a skipped outcome instead of failing.
	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, errors.New("invalid SMTP_PORT env variable")
		}
		cfg.SMTPPort = port
	} else {
		cfg.SMTPPort = 587
	}
	if cfg.SMTPUser == "" {
		cfg.SMTPUser = os.Getenv("SMTP_USER")
	}
	if cfg.SMTPPassword == "" {
		cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	}
	cfg.NotifyEmail = os.Getenv("NOTIFY_EMAIL")
	if cfg.NotifyEmail == "" {
		cfg.NotifyEmail = DefaultNotifyEmail
	}

	return cfg, nil
}
