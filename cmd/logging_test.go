package cmd

import (
	"testing"

	"github.com/vibast-solutions/ms-go-authn/config"

	"github.com/sirupsen/logrus"
)

func TestConfigureLogging(t *testing.T) {
	prevLevel := logrus.GetLevel()
	prevFormatter := logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetLevel(prevLevel)
		logrus.SetFormatter(prevFormatter)
	})

	cfg := &config.Config{Log: config.LogConfig{Level: "debug", Format: "text"}}
	if err := configureLogging(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logrus.GetLevel())
	}
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter")
	}

	cfg.Log = config.LogConfig{Level: "loud", Format: "json"}
	if err := configureLogging(cfg); err == nil {
		t.Fatalf("expected error for unknown level")
	}

	cfg.Log = config.LogConfig{Level: "info", Format: "xml"}
	if err := configureLogging(cfg); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
