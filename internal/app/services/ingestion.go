package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/freedaiy/intake/internal/app/domain"
	"github.com/freedaiy/intake/internal/app/ports"
)

// ErrPersistenceFailed indicates the store rejected or could not take a write.
var ErrPersistenceFailed = errors.New("persistence failed")

// PersistenceError wraps a store failure with a caller-facing prefix.
type PersistenceError struct {
	Prefix string
	Cause  error
}

func (e *PersistenceError) Error() string {
	return e.Detail()
}

// Detail is the bounded message safe to return to callers.
func (e *PersistenceError) Detail() string {
	cause := "unknown error"
	if e.Cause != nil {
		cause = truncate(e.Cause.Error(), maxDetailCause)
	}
	return e.Prefix + ": " + cause
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// Is matches ErrPersistenceFailed.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFailed
}

// ErrorKind classifies service failures for transport-specific mapping.
type ErrorKind string

const (
	// ErrorUnknown is used when error is nil or not classified.
	ErrorUnknown ErrorKind = "unknown"
	// ErrorValidation indicates a rejected submission.
	ErrorValidation ErrorKind = "validation"
	// ErrorPersistence indicates the store failed the write.
	ErrorPersistence ErrorKind = "persistence"
)

// ClassifyError classifies a returned ingestion error.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorUnknown
	case errors.Is(err, ErrValidationFailed):
		return ErrorValidation
	case errors.Is(err, ErrPersistenceFailed):
		return ErrorPersistence
	default:
		return ErrorUnknown
	}
}

// SubmissionObserver records submission outcomes.
type SubmissionObserver interface {
	ObserveSubmission(kind, outcome string)
}

const (
	outcomeAccepted = "accepted"
	outcomeInvalid  = "invalid"
	outcomeFailed   = "failed"
)

// IntakeService validates and stores lead and subscriber submissions.
type IntakeService struct {
	store     ports.DocumentStore
	validator *SubmissionValidator
	observer  SubmissionObserver
	log       *slog.Logger
}

// NewIntakeService constructs an intake service. observer may be nil.
func NewIntakeService(store ports.DocumentStore, validator *SubmissionValidator, observer SubmissionObserver, log *slog.Logger) *IntakeService {
	if validator == nil {
		validator = NewSubmissionValidator()
	}
	if log == nil {
		log = slog.Default()
	}
	return &IntakeService{store: store, validator: validator, observer: observer, log: log}
}

// SubmitLead validates the lead and writes it to the lead collection once.
func (s *IntakeService) SubmitLead(ctx context.Context, lead domain.Lead) (domain.LeadReceipt, error) {
	if err := s.validator.ValidateLead(lead); err != nil {
		s.observe(ports.CollectionLead, outcomeInvalid)
		return domain.LeadReceipt{}, err
	}

	id, err := s.create(ctx, ports.CollectionLead, lead)
	if err != nil {
		return domain.LeadReceipt{}, &PersistenceError{Prefix: "Failed to save lead", Cause: err}
	}

	return domain.LeadReceipt{
		ID:      string(id),
		Name:    lead.Name,
		Email:   lead.Email,
		Company: lead.Company,
	}, nil
}

// SubmitSubscriber validates the subscription and writes it once. Absent
// interests become an empty list.
func (s *IntakeService) SubmitSubscriber(ctx context.Context, sub domain.Subscriber) (domain.SubscriberReceipt, error) {
	if sub.Interests == nil {
		sub.Interests = []string{}
	}
	if err := s.validator.ValidateSubscriber(sub); err != nil {
		s.observe(ports.CollectionSubscriber, outcomeInvalid)
		return domain.SubscriberReceipt{}, err
	}

	id, err := s.create(ctx, ports.CollectionSubscriber, sub)
	if err != nil {
		return domain.SubscriberReceipt{}, &PersistenceError{Prefix: "Failed to subscribe", Cause: err}
	}

	return domain.SubscriberReceipt{
		ID:        string(id),
		Email:     sub.Email,
		Interests: sub.Interests,
	}, nil
}

// create detaches the write from caller cancellation: an aborted request may
// still complete its write.
func (s *IntakeService) create(ctx context.Context, collection ports.CollectionName, record any) (ports.DocumentID, error) {
	if s.store == nil {
		s.observe(collection, outcomeFailed)
		return "", ports.ErrStoreUnavailable
	}
	id, err := s.store.CreateDocument(context.WithoutCancel(ctx), collection, record)
	if err != nil {
		s.observe(collection, outcomeFailed)
		s.log.ErrorContext(ctx, "Failed to store submission", "collection", collection.String(), "error", err)
		return "", err
	}
	s.observe(collection, outcomeAccepted)
	return id, nil
}

func (s *IntakeService) observe(collection ports.CollectionName, outcome string) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveSubmission(collection.String(), outcome)
}
