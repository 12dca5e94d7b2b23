package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/freedaiy/intake/internal/adapters/fallback"
	"github.com/freedaiy/intake/internal/app/domain"
	"github.com/freedaiy/intake/internal/app/ports"
	portmocks "github.com/freedaiy/intake/internal/app/ports/mocks"
)

func noPresence() ConfigPresence { return ConfigPresence{} }

func TestDiagnosticsService_Status_FallbackWithoutConfig(t *testing.T) {
	svc := NewDiagnosticsService(ports.StoreResolution{Store: fallback.New(), Backend: fallback.BackendName}, noPresence)

	report := svc.Status(context.Background())

	if report.Tier != domain.StatusTierUnavailable {
		t.Fatalf("expected unavailable tier, got %q", report.Tier)
	}
	if report.Backend != "✅ Running" || report.Database != "❌ Not Available" {
		t.Fatalf("unexpected labels: %+v", report)
	}
	if report.DatabaseURL != "❌ Not Set" || report.DatabaseName != "❌ Not Set" {
		t.Fatalf("unexpected presence flags: %+v", report)
	}
	if report.ConnectionStatus != "Not Connected" || report.Collections == nil || len(report.Collections) != 0 {
		t.Fatalf("unexpected connection fields: %+v", report)
	}
}

func TestDiagnosticsService_Status_ResolutionErrorIsTruncated(t *testing.T) {
	resolution := ports.StoreResolution{
		Store:   fallback.New(),
		Backend: "postgres",
		Err:     errors.New(strings.Repeat("e", 300)),
	}
	svc := NewDiagnosticsService(resolution, func() ConfigPresence { return ConfigPresence{DatabaseURL: true, DatabaseName: true} })

	report := svc.Status(context.Background())

	if report.Tier != domain.StatusTierUnavailable {
		t.Fatalf("expected unavailable tier, got %q", report.Tier)
	}
	if report.Database != "❌ Error: "+strings.Repeat("e", 60) {
		t.Fatalf("unexpected database label: %q", report.Database)
	}
	if report.DatabaseURL != "✅ Set" || report.DatabaseName != "✅ Set" {
		t.Fatalf("unexpected presence flags: %+v", report)
	}
}

func TestDiagnosticsService_Status_ConnectedButErroring(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	store.EXPECT().ListCollections(mock.Anything).Return(nil, errors.New("permission denied")).Once()
	svc := NewDiagnosticsService(ports.StoreResolution{Store: store, Backend: "redis", Live: true}, noPresence)

	report := svc.Status(context.Background())

	if report.Tier != domain.StatusTierDegraded {
		t.Fatalf("expected degraded tier, got %q", report.Tier)
	}
	if report.Database != "⚠️ Connected but Error: permission denied" {
		t.Fatalf("unexpected database label: %q", report.Database)
	}
	if report.ConnectionStatus != "Not Connected" || len(report.Collections) != 0 {
		t.Fatalf("unexpected connection fields: %+v", report)
	}
}

func TestDiagnosticsService_Status_ConnectedCapsCollections(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	store.EXPECT().ListCollections(mock.Anything).Return(names, nil).Once()
	svc := NewDiagnosticsService(ports.StoreResolution{Store: store, Backend: "sqlite", Live: true}, noPresence)

	report := svc.Status(context.Background())

	if report.Tier != domain.StatusTierConnected {
		t.Fatalf("expected connected tier, got %q", report.Tier)
	}
	if report.Database != "✅ Connected & Working" || report.ConnectionStatus != "Connected" {
		t.Fatalf("unexpected labels: %+v", report)
	}
	if len(report.Collections) != 10 || report.Collections[9] != "j" {
		t.Fatalf("expected first 10 collections, got %v", report.Collections)
	}
	if report.StoreBackend != "sqlite" {
		t.Fatalf("unexpected store backend %q", report.StoreBackend)
	}
}

func TestDiagnosticsService_Status_RecoversFromProbePanic(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	store.EXPECT().ListCollections(mock.Anything).Run(func(context.Context) { panic("driver exploded") }).Return(nil, nil).Once()
	svc := NewDiagnosticsService(ports.StoreResolution{Store: store, Backend: "sqlite", Live: true}, func() ConfigPresence {
		return ConfigPresence{DatabaseURL: true}
	})

	report := svc.Status(context.Background())

	if report.Tier != domain.StatusTierUnavailable {
		t.Fatalf("expected unavailable tier after panic, got %q", report.Tier)
	}
	if report.Database != "❌ Error: driver exploded" {
		t.Fatalf("unexpected database label: %q", report.Database)
	}
	if report.DatabaseURL != "✅ Set" {
		t.Fatalf("presence flags must survive a probe panic: %+v", report)
	}
}

func TestDiagnosticsService_Status_RecoversFromPresencePanic(t *testing.T) {
	svc := NewDiagnosticsService(ports.StoreResolution{Store: fallback.New()}, func() ConfigPresence { panic("env") })

	report := svc.Status(context.Background())

	if report.DatabaseURL != "❌ Not Set" || report.Tier != domain.StatusTierUnavailable {
		t.Fatalf("unexpected report: %+v", report)
	}
}

type lastErrorStore struct {
	*portmocks.MockDocumentStore
	err error
}

func (s lastErrorStore) LastListError() error { return s.err }

func TestDiagnosticsService_Status_SurfacesLastListFailure(t *testing.T) {
	inner := portmocks.NewMockDocumentStore(t)
	inner.EXPECT().ListCollections(mock.Anything).Return([]string{"lead"}, nil).Once()
	store := lastErrorStore{MockDocumentStore: inner, err: errors.New("list lead: timeout")}
	svc := NewDiagnosticsService(ports.StoreResolution{Store: store, Backend: "redis", Live: true}, noPresence)

	report := svc.Status(context.Background())

	if report.LastListError != "list lead: timeout" {
		t.Fatalf("expected last list error, got %q", report.LastListError)
	}
	if report.Tier != domain.StatusTierConnected {
		t.Fatalf("expected connected tier, got %q", report.Tier)
	}
}
