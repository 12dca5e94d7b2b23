package domain

// StatusTier classifies store health for diagnostics.
type StatusTier string

const (
	// StatusTierUnavailable means no live store was resolved.
	StatusTierUnavailable StatusTier = "unavailable"
	// StatusTierDegraded means the store resolved but its probe errored.
	StatusTierDegraded StatusTier = "degraded"
	// StatusTierConnected means the store answered the probe.
	StatusTierConnected StatusTier = "connected"
)

// StatusReport is the diagnostics payload served on /test.
type StatusReport struct {
	Backend          string     `json:"backend" yaml:"backend"`
	Database         string     `json:"database" yaml:"database"`
	DatabaseURL      string     `json:"database_url" yaml:"database_url"`
	DatabaseName     string     `json:"database_name" yaml:"database_name"`
	ConnectionStatus string     `json:"connection_status" yaml:"connection_status"`
	Collections      []string   `json:"collections" yaml:"collections"`
	StoreBackend     string     `json:"store_backend" yaml:"store_backend"`
	LastListError    string     `json:"last_list_error,omitempty" yaml:"last_list_error,omitempty"`
	Tier             StatusTier `json:"-" yaml:"tier"`
}
