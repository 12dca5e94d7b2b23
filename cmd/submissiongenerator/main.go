package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/freedaiy/intake/pkg/intakeclient"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	interval, _ := time.ParseDuration(cfg.Interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	client := intakeclient.Client{Endpoint: cfg.BaseURL, Timeout: 10 * time.Second}
	for sent := 0; cfg.Count <= 0 || sent < cfg.Count; sent++ {
		if err := send(ctx, client, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "submission error:", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func loadConfig(path string) (config, error) {
	if strings.TrimSpace(path) == "" {
		return config{}, fmt.Errorf("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("kind", kindBoth)
	v.SetDefault("email_domain", "example.com")
	v.SetDefault("interval", "5s")
	if err := v.ReadInConfig(); err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Kind = strings.ToLower(strings.TrimSpace(cfg.Kind))
	cfg.EmailDomain = strings.TrimSpace(cfg.EmailDomain)
	cfg.Company = strings.TrimSpace(cfg.Company)
	cfg.Interval = strings.TrimSpace(cfg.Interval)

	if cfg.BaseURL == "" {
		return config{}, fmt.Errorf("config must include base_url")
	}
	switch cfg.Kind {
	case kindLead, kindSubscriber, kindBoth:
	default:
		return config{}, fmt.Errorf("kind must be lead, subscriber or both, got %q", cfg.Kind)
	}

	parsed, err := time.ParseDuration(cfg.Interval)
	if err != nil {
		return config{}, fmt.Errorf("invalid interval duration: %w", err)
	}
	if parsed <= 0 {
		return config{}, fmt.Errorf("interval must be positive")
	}

	return cfg, nil
}

func send(ctx context.Context, client intakeclient.Client, cfg config) error {
	ref, err := randomSHA(7)
	if err != nil {
		return fmt.Errorf("failed to generate reference: %w", err)
	}
	email := fmt.Sprintf("load-%s@%s", ref, cfg.EmailDomain)

	if cfg.Kind == kindLead || cfg.Kind == kindBoth {
		lead := intakeclient.Lead{Name: "Load Test " + ref, Email: email}
		if cfg.Company != "" {
			lead.Company = &cfg.Company
		}
		receipt, err := client.SubmitLead(ctx, lead)
		if err != nil {
			return fmt.Errorf("lead failed: %w", err)
		}
		fmt.Printf("Lead stored: id=%s placeholder=%t (ref %s)\n", receipt.ID, intakeclient.Placeholder(receipt.ID), ref)
	}

	if cfg.Kind == kindSubscriber || cfg.Kind == kindBoth {
		receipt, err := client.Subscribe(ctx, intakeclient.Subscriber{Email: email, Interests: cfg.Interests})
		if err != nil {
			return fmt.Errorf("subscribe failed: %w", err)
		}
		fmt.Printf("Subscriber stored: id=%s placeholder=%t (ref %s)\n", receipt.ID, intakeclient.Placeholder(receipt.ID), ref)
	}
	return nil
}

func randomSHA(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid length")
	}
	bytesNeeded := (length + 1) / 2
	raw := make([]byte, bytesNeeded)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	hexValue := hex.EncodeToString(raw)
	return hexValue[:length], nil
}
