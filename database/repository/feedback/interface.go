package feedbackRepo

import "nextstop/models"

// FeedbackRepository defines methods for feedback access.
type FeedbackRepository interface {
	// Create inserts a new feedback record.
	Create(fb *models.Feedback) error
	// GetAll retrieves all feedback, newest first.
	GetAll() ([]models.Feedback, error)
}
