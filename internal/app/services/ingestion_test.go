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

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) ObserveSubmission(kind, outcome string) {
	r.events = append(r.events, kind+":"+outcome)
}

func TestIntakeService_SubmitLead_InvalidNeverTouchesStore(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	observer := &recordingObserver{}
	svc := NewIntakeService(store, nil, observer, nil)

	for _, lead := range []domain.Lead{
		{Name: "A", Email: "a@b.com"},
		{Name: strings.Repeat("a", 121), Email: "a@b.com"},
		{Name: "Al", Email: "broken"},
	} {
		_, err := svc.SubmitLead(context.Background(), lead)
		if ClassifyError(err) != ErrorValidation {
			t.Fatalf("expected validation error for %+v, got %v", lead, err)
		}
	}
	store.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
	if len(observer.events) != 3 || observer.events[0] != "lead:invalid" {
		t.Fatalf("unexpected observations: %v", observer.events)
	}
}

func TestIntakeService_SubmitLead_FallbackEchoesInput(t *testing.T) {
	svc := NewIntakeService(fallback.New(), nil, nil, nil)
	company := "Acme"

	first, err := svc.SubmitLead(context.Background(), domain.Lead{Name: "Al", Email: "a@b.com", Company: &company})
	if err != nil {
		t.Fatalf("SubmitLead returned error: %v", err)
	}
	second, err := svc.SubmitLead(context.Background(), domain.Lead{Name: "Bo", Email: "b@c.com"})
	if err != nil {
		t.Fatalf("SubmitLead returned error: %v", err)
	}

	if first.ID != "mock-id" || second.ID != first.ID {
		t.Fatalf("expected constant placeholder id, got %q and %q", first.ID, second.ID)
	}
	if first.Name != "Al" || first.Email != "a@b.com" || first.Company == nil || *first.Company != "Acme" {
		t.Fatalf("unexpected receipt: %+v", first)
	}
	if second.Company != nil {
		t.Fatalf("expected nil company, got %q", *second.Company)
	}
}

func TestIntakeService_SubmitLead_WritesLeadCollectionOnce(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	svc := NewIntakeService(store, nil, nil, nil)
	lead := domain.Lead{Name: "Al", Email: "a@b.com"}

	store.EXPECT().CreateDocument(mock.Anything, ports.CollectionLead, lead).Return(ports.DocumentID("doc-1"), nil).Once()

	receipt, err := svc.SubmitLead(context.Background(), lead)
	if err != nil {
		t.Fatalf("SubmitLead returned error: %v", err)
	}
	if receipt.ID != "doc-1" {
		t.Fatalf("expected store id, got %q", receipt.ID)
	}
}

func TestIntakeService_SubmitLead_StoreFailureBecomesPersistenceError(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	observer := &recordingObserver{}
	svc := NewIntakeService(store, nil, observer, nil)

	cause := errors.Join(ports.ErrWriteFailed, errors.New(strings.Repeat("x", 500)))
	store.EXPECT().CreateDocument(mock.Anything, ports.CollectionLead, mock.Anything).Return(ports.DocumentID(""), cause).Once()

	_, err := svc.SubmitLead(context.Background(), domain.Lead{Name: "Al", Email: "a@b.com"})
	if ClassifyError(err) != ErrorPersistence {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if !errors.Is(err, ports.ErrWriteFailed) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PersistenceError, got %T", err)
	}
	detail := pErr.Detail()
	if !strings.HasPrefix(detail, "Failed to save lead: ") {
		t.Fatalf("unexpected detail prefix: %q", detail)
	}
	if got := len(strings.TrimPrefix(detail, "Failed to save lead: ")); got != maxDetailCause {
		t.Fatalf("expected cause truncated to %d, got %d", maxDetailCause, got)
	}
	if observer.events[len(observer.events)-1] != "lead:failed" {
		t.Fatalf("unexpected observations: %v", observer.events)
	}
}

func TestIntakeService_SubmitLead_DetachesWriteFromCancellation(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	svc := NewIntakeService(store, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store.EXPECT().CreateDocument(mock.Anything, ports.CollectionLead, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ ports.CollectionName, _ interface{}) (ports.DocumentID, error) {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "doc-2", nil
		}).Once()

	receipt, err := svc.SubmitLead(ctx, domain.Lead{Name: "Al", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("expected detached write to succeed, got %v", err)
	}
	if receipt.ID != "doc-2" {
		t.Fatalf("unexpected id %q", receipt.ID)
	}
}

func TestIntakeService_SubmitSubscriber_DefaultsInterests(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	svc := NewIntakeService(store, nil, nil, nil)

	store.EXPECT().CreateDocument(mock.Anything, ports.CollectionSubscriber, domain.Subscriber{Email: "x@y.com", Interests: []string{}}).
		Return(ports.DocumentID("mock-id"), nil).Once()

	receipt, err := svc.SubmitSubscriber(context.Background(), domain.Subscriber{Email: "x@y.com"})
	if err != nil {
		t.Fatalf("SubmitSubscriber returned error: %v", err)
	}
	if receipt.Interests == nil || len(receipt.Interests) != 0 {
		t.Fatalf("expected empty non-nil interests, got %#v", receipt.Interests)
	}
}

func TestIntakeService_SubmitSubscriber_StoreUnavailable(t *testing.T) {
	store := portmocks.NewMockDocumentStore(t)
	svc := NewIntakeService(store, nil, nil, nil)

	store.EXPECT().CreateDocument(mock.Anything, ports.CollectionSubscriber, mock.Anything).Return(ports.DocumentID(""), ports.ErrStoreUnavailable).Once()

	_, err := svc.SubmitSubscriber(context.Background(), domain.Subscriber{Email: "x@y.com", Interests: []string{"ai"}})
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if pErr.Detail() != "Failed to subscribe: store unavailable" {
		t.Fatalf("unexpected detail %q", pErr.Detail())
	}
}
