package taskvalidate

import (
	"context"
	"fmt"

	"github.com/fanpassport/backend/internal/entity"
)

// Validator Factory
func NewValidator(ctx context.Context, task entity.Task) (Validator, error) {
	var validator Validator
	var err error
	switch task.Type {
	case entity.TaskQuiz:
		validator, err = newQuizValidator(ctx, task)

	case entity.TaskQRCode:
		validator, err = newQRCodeValidator(ctx, task)

	case entity.TaskCheckIn:
		validator, err = newCheckInValidator(ctx, task)

	case entity.TaskPhoto:
		validator, err = newPhotoValidator(ctx, task)

	default:
		return nil, fmt.Errorf("invalid task type %s", task.Type)
	}

	if err != nil {
		return nil, err
	}

	return validator, nil
}
