package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8741 {
		t.Errorf("expected default port 8741, got %d", cfg.Port)
	}
	if cfg.DataFile != "polling_data.json" {
		t.Errorf("expected default data file, got %q", cfg.DataFile)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("expected default SMTP port 587, got %d", cfg.SMTPPort)
	}
	if cfg.NotifyEmail != DefaultNotifyEmail {
		t.Errorf("expected default recipient, got %q", cfg.NotifyEmail)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("POLL_DATA_FILE", "/data/poll.json")
	os.Setenv("SMTP_HOST", "smtp.example.com")
	os.Setenv("SMTP_USER", "mailer@example.com")
	os.Setenv("NOTIFY_EMAIL", "ops@example.com")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DataFile != "/data/poll.json" {
		t.Errorf("expected data file from env, got %q", cfg.DataFile)
	}
	if cfg.SMTPHost != "smtp.example.com" || cfg.SMTPUser != "mailer@example.com" {
		t.Errorf("SMTP settings not read from env: %+v", cfg)
	}
	if cfg.NotifyEmail != "ops@example.com" {
		t.Errorf("expected recipient override, got %q", cfg.NotifyEmail)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("POLL_DATA_FILE", "/data/env.json")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-f", "cli.json"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DataFile != "cli.json" {
		t.Errorf("CLI should override env: expected cli.json, got %q", cfg.DataFile)
	}
}

func TestParseFlags_BadPort(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}
