package taskvalidate

import "context"

// Validator decides whether a submission satisfies a task. Implementations
// are stateless and total: they never mutate anything and never fail for a
// well-typed input, they only answer yes or no.
type Validator interface {
	Validate(ctx context.Context, input string) (bool, error)

	// SanitizedData returns the task payload that is safe to show to users.
	// Secrets (quiz answers, QR values) are stripped.
	SanitizedData() map[string]any
}
