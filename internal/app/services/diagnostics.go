package services

import (
	"context"
	"fmt"

	"github.com/freedaiy/intake/internal/app/domain"
	"github.com/freedaiy/intake/internal/app/ports"
)

const (
	maxReportedCollections = 10

	labelRunning          = "✅ Running"
	labelNotAvailable     = "❌ Not Available"
	labelErrorPrefix      = "❌ Error: "
	labelConnectedError   = "⚠️ Connected but Error: "
	labelConnectedWorking = "✅ Connected & Working"
	labelSet              = "✅ Set"
	labelNotSet           = "❌ Not Set"

	connectionNotConnected = "Not Connected"
	connectionConnected    = "Connected"
)

// ConfigPresence reports which store settings are present. Values are never
// carried, only presence.
type ConfigPresence struct {
	DatabaseURL  bool
	DatabaseName bool
}

// DiagnosticsService reports store reachability and configuration presence.
type DiagnosticsService struct {
	resolution ports.StoreResolution
	presence   func() ConfigPresence
}

// NewDiagnosticsService constructs diagnostics over the startup resolution.
func NewDiagnosticsService(resolution ports.StoreResolution, presence func() ConfigPresence) *DiagnosticsService {
	if presence == nil {
		presence = func() ConfigPresence { return ConfigPresence{} }
	}
	return &DiagnosticsService{resolution: resolution, presence: presence}
}

// Status builds the status report. It never panics and never fails: every
// store failure becomes one of the three tiers.
func (s *DiagnosticsService) Status(ctx context.Context) (report domain.StatusReport) {
	report = domain.StatusReport{
		Backend:          labelRunning,
		Database:         labelNotAvailable,
		ConnectionStatus: connectionNotConnected,
		Collections:      []string{},
		StoreBackend:     s.resolution.Backend,
		Tier:             domain.StatusTierUnavailable,
	}
	presence := s.safePresence()
	report.DatabaseURL = presenceLabel(presence.DatabaseURL)
	report.DatabaseName = presenceLabel(presence.DatabaseName)

	defer func() {
		if r := recover(); r != nil {
			report.Database = labelErrorPrefix + truncate(fmt.Sprint(r), maxStatusCause)
			report.ConnectionStatus = connectionNotConnected
			report.Collections = []string{}
			report.Tier = domain.StatusTierUnavailable
		}
	}()

	store := s.resolution.Store
	switch {
	case s.resolution.Err != nil:
		report.Database = labelErrorPrefix + truncate(s.resolution.Err.Error(), maxStatusCause)
		return report
	case !s.resolution.Live || store == nil:
		return report
	}

	if reporter, ok := store.(ports.ListFailureReporter); ok {
		if err := reporter.LastListError(); err != nil {
			report.LastListError = truncate(err.Error(), maxStatusCause)
		}
	}

	names, err := store.ListCollections(ctx)
	if err != nil {
		report.Database = labelConnectedError + truncate(err.Error(), maxStatusCause)
		report.Tier = domain.StatusTierDegraded
		return report
	}

	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.Collections = append([]string{}, names...)
	report.Database = labelConnectedWorking
	report.ConnectionStatus = connectionConnected
	report.Tier = domain.StatusTierConnected
	return report
}

func (s *DiagnosticsService) safePresence() (presence ConfigPresence) {
	defer func() {
		if recover() != nil {
			presence = ConfigPresence{}
		}
	}()
	return s.presence()
}

func presenceLabel(set bool) string {
	if set {
		return labelSet
	}
	return labelNotSet
}
