package main

type config struct {
	BaseURL     string   `mapstructure:"base_url"`
	Kind        string   `mapstructure:"kind"`
	EmailDomain string   `mapstructure:"email_domain"`
	Company     string   `mapstructure:"company"`
	Interests   []string `mapstructure:"interests"`
	Interval    string   `mapstructure:"interval"`
	Count       int      `mapstructure:"count"`
}

const (
	kindLead       = "lead"
	kindSubscriber = "subscriber"
	kindBoth       = "both"
)
