package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freedaiy/intake/internal/app/domain"
	appservices "github.com/freedaiy/intake/internal/app/services"
)

// Submitter stores validated submissions.
type Submitter interface {
	SubmitLead(ctx context.Context, lead domain.Lead) (domain.LeadReceipt, error)
	SubmitSubscriber(ctx context.Context, sub domain.Subscriber) (domain.SubscriberReceipt, error)
}

// IntakeRoutes registers the submission endpoints.
type IntakeRoutes struct {
	intake Submitter
}

// NewIntakeRoutes constructs intake routes.
func NewIntakeRoutes(intake Submitter) *IntakeRoutes {
	return &IntakeRoutes{intake: intake}
}

// RegisterRoutes registers submission endpoints.
func (r *IntakeRoutes) RegisterRoutes(s *echo.Echo) {
	s.POST("/leads", r.handleCreateLead)
	s.POST("/subscribe", r.handleSubscribe)
}

func (r *IntakeRoutes) handleCreateLead(c echo.Context) error {
	var lead domain.Lead
	if err := decodeBody(c, &lead); err != nil {
		return malformedBody(c, err)
	}
	receipt, err := r.intake.SubmitLead(c.Request().Context(), lead)
	if err != nil {
		return submissionError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (r *IntakeRoutes) handleSubscribe(c echo.Context) error {
	var req subscribeRequest
	if err := decodeBody(c, &req); err != nil {
		return malformedBody(c, err)
	}
	sub, violations := req.subscriber()
	if len(violations) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, detailResponse{Detail: violations})
	}
	receipt, err := r.intake.SubmitSubscriber(c.Request().Context(), sub)
	if err != nil {
		return submissionError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}

// subscribeRequest keeps interest elements nullable so null entries can be
// told apart from empty strings.
type subscribeRequest struct {
	Email     string    `json:"email"`
	Interests []*string `json:"interests"`
}

func (r subscribeRequest) subscriber() (domain.Subscriber, []appservices.FieldViolation) {
	sub := domain.Subscriber{Email: r.Email}
	if r.Interests == nil {
		return sub, nil
	}
	var violations []appservices.FieldViolation
	sub.Interests = make([]string, 0, len(r.Interests))
	for i, interest := range r.Interests {
		if interest == nil {
			violations = append(violations, appservices.FieldViolation{
				Field:      fmt.Sprintf("interests[%d]", i),
				Constraint: "string",
				Message:    "must be a string",
			})
			continue
		}
		sub.Interests = append(sub.Interests, *interest)
	}
	return sub, violations
}

// decodeBody reads exactly one JSON value from the request body.
func decodeBody(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func malformedBody(c echo.Context, err error) error {
	message := err.Error()
	return c.JSON(http.StatusUnprocessableEntity, detailResponse{
		Detail: []appservices.FieldViolation{{
			Field:      "body",
			Constraint: "json",
			Message:    message,
		}},
	})
}

func submissionError(c echo.Context, err error) error {
	switch appservices.ClassifyError(err) {
	case appservices.ErrorValidation:
		var verr *appservices.ValidationError
		violations := []appservices.FieldViolation{}
		if errors.As(err, &verr) {
			violations = verr.Violations
		}
		return c.JSON(http.StatusUnprocessableEntity, detailResponse{Detail: violations})
	case appservices.ErrorPersistence:
		var perr *appservices.PersistenceError
		detail := err.Error()
		if errors.As(err, &perr) {
			detail = perr.Detail()
		}
		return c.JSON(http.StatusInternalServerError, detailResponse{Detail: detail})
	default:
		return err
	}
}
