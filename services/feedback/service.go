package feedback

import (
	"fmt"

	busRepo "nextstop/database/repository/bus"
	feedbackRepo "nextstop/database/repository/feedback"
	"nextstop/models"

	"github.com/google/uuid"
)

// ServiceError is a typed failure from the feedback service.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes surfaced to the HTTP layer.
const (
	CodeInvalidRequest = "invalidRequest"
	CodeNotFound       = "notFound"
)

// Service records and lists passenger feedback.
type Service interface {
	Add(principal models.Principal, busNumber string, rating int, comment string) (*models.Feedback, error)
	GetAll() ([]models.Feedback, error)
}

// DefaultFeedbackService implements Service.
type DefaultFeedbackService struct {
	Repo    feedbackRepo.FeedbackRepository
	BusRepo busRepo.BusRepository
}

// Add records feedback from the principal for an existing bus.
func (s *DefaultFeedbackService) Add(principal models.Principal, busNumber string, rating int, comment string) (*models.Feedback, error) {
	if busNumber == "" {
		return nil, &ServiceError{Code: CodeInvalidRequest, Message: "busNumber is required"}
	}
	if rating < 1 || rating > 5 {
		return nil, &ServiceError{Code: CodeInvalidRequest, Message: "rating must be between 1 and 5"}
	}

	bus, err := s.BusRepo.GetByNumber(busNumber)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, &ServiceError{Code: CodeNotFound, Message: "Bus not found"}
	}

	fb := &models.Feedback{
		ID:        uuid.New().String(),
		Username:  principal.Username,
		BusNumber: bus.BusNumber,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.Repo.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// GetAll lists all feedback, newest first.
func (s *DefaultFeedbackService) GetAll() ([]models.Feedback, error) {
	return s.Repo.GetAll()
}
