package config

import (
	"os"
	"os/exec"
	"testing"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("YAHOO_QUOTESUMMARY_URL")
	_ = os.Unsetenv("YAHOO_USER_AGENT")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Yahoo.QuoteSummaryURL != "https://query1.finance.yahoo.com/v10/finance/quoteSummary" {
		t.Fatalf("unexpected default quoteSummary URL: %q", AppConfig.Yahoo.QuoteSummaryURL)
	}
	if AppConfig.Yahoo.UserAgent == "" {
		t.Fatalf("expected a default user agent")
	}
}

// TestLoadConfig_EnvOverride verifies environment variables take precedence.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("YAHOO_QUOTESUMMARY_URL", "http://127.0.0.1:9999/v10/finance/quoteSummary")

	LoadConfig()

	if AppConfig.Server.Port != "9191" {
		t.Fatalf("expected SERVER_PORT override, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Yahoo.QuoteSummaryURL != "http://127.0.0.1:9999/v10/finance/quoteSummary" {
		t.Fatalf("expected URL override, got %q", AppConfig.Yahoo.QuoteSummaryURL)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
