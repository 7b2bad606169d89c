package taskvalidate

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
)

// Quiz Validator
//
// The task data may be a JSON object with the question and its options, or a
// plain question string for older catalog entries. The expected answer is
// matched case-insensitively.
type quizPrompt struct {
	Question string   `mapstructure:"question" structs:"question"`
	Options  []string `mapstructure:"options" structs:"options,omitempty"`
}

type quizValidator struct {
	prompt quizPrompt
	answer string
}

func newQuizValidator(ctx context.Context, task entity.Task) (*quizValidator, error) {
	prompt := quizPrompt{}

	raw := map[string]any{}
	if err := json.Unmarshal([]byte(task.Data), &raw); err != nil {
		prompt.Question = task.Data
	} else if err := mapstructure.Decode(raw, &prompt); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode quiz data of task %d: %v", task.ID, err)
		prompt.Question = task.Data
	}

	return &quizValidator{prompt: prompt, answer: task.Answer}, nil
}

func (v *quizValidator) Validate(ctx context.Context, input string) (bool, error) {
	return strings.EqualFold(v.answer, input), nil
}

func (v *quizValidator) SanitizedData() map[string]any {
	return structs.Map(v.prompt)
}

// QRCode Validator
//
// The submission must match the expected scanned value exactly.
type qrCodeValidator struct {
	expected string
}

func newQRCodeValidator(_ context.Context, task entity.Task) (*qrCodeValidator, error) {
	return &qrCodeValidator{expected: task.Data}, nil
}

func (v *qrCodeValidator) Validate(ctx context.Context, input string) (bool, error) {
	return v.expected == input, nil
}

func (v *qrCodeValidator) SanitizedData() map[string]any {
	// The expected value is the secret, nothing to expose.
	return map[string]any{}
}

// CheckIn Validator
type checkInValidator struct {
	location string
}

func newCheckInValidator(_ context.Context, task entity.Task) (*checkInValidator, error) {
	return &checkInValidator{location: task.Data}, nil
}

func (v *checkInValidator) Validate(context.Context, string) (bool, error) {
	return true, nil
}

func (v *checkInValidator) SanitizedData() map[string]any {
	return map[string]any{"location": v.location}
}

// Photo Validator
//
// Photo tasks complete unconditionally when invoked; the admin approval that
// gates the call happens outside the engine.
type photoValidator struct{}

func newPhotoValidator(context.Context, entity.Task) (*photoValidator, error) {
	return &photoValidator{}, nil
}

func (v *photoValidator) Validate(context.Context, string) (bool, error) {
	return true, nil
}

func (v *photoValidator) SanitizedData() map[string]any {
	return map[string]any{}
}
