package taskvalidate_test

import (
	"testing"

	"github.com/fanpassport/backend/internal/domain/taskvalidate"
	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_quizValidator(t *testing.T) {
	ctx := testutil.MockContext()
	task := entity.Task{
		Type:   entity.TaskQuiz,
		Data:   `{"question":"In which year was the club founded?","options":["1968","1970"]}`,
		Answer: "1970",
	}

	validator, err := taskvalidate.NewValidator(ctx, task)
	require.NoError(t, err)

	testcases := []struct {
		input    string
		expected bool
	}{
		{input: "1970", expected: true},
		{input: "1968", expected: false},
		{input: "", expected: false},
	}

	for _, tc := range testcases {
		ok, err := validator.Validate(ctx, tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.expected, ok, "input %q", tc.input)
	}

	data := validator.SanitizedData()
	require.Equal(t, "In which year was the club founded?", data["question"])
	require.NotContains(t, data, "answer")
}

func Test_quizValidator_caseInsensitive(t *testing.T) {
	ctx := testutil.MockContext()
	validator, err := taskvalidate.NewValidator(ctx, entity.Task{
		Type:   entity.TaskQuiz,
		Data:   "Who scored in the final?",
		Answer: "Miller",
	})
	require.NoError(t, err)

	ok, err := validator.Validate(ctx, "miller")
	require.NoError(t, err)
	require.True(t, ok)

	// A plain question string is still exposed as the prompt.
	require.Equal(t, "Who scored in the final?", validator.SanitizedData()["question"])
}

func Test_qrCodeValidator(t *testing.T) {
	ctx := testutil.MockContext()
	validator, err := taskvalidate.NewValidator(ctx, entity.Task{
		Type: entity.TaskQRCode,
		Data: "gate-secret",
	})
	require.NoError(t, err)

	ok, err := validator.Validate(ctx, "gate-secret")
	require.NoError(t, err)
	require.True(t, ok)

	// The match is exact, unlike quiz answers.
	ok, err = validator.Validate(ctx, "Gate-Secret")
	require.NoError(t, err)
	require.False(t, ok)

	require.Empty(t, validator.SanitizedData())
}

func Test_checkInAndPhotoValidators(t *testing.T) {
	ctx := testutil.MockContext()

	checkIn, err := taskvalidate.NewValidator(ctx, entity.Task{
		Type: entity.TaskCheckIn,
		Data: "North Stand",
	})
	require.NoError(t, err)

	ok, err := checkIn.Validate(ctx, "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "North Stand", checkIn.SanitizedData()["location"])

	photo, err := taskvalidate.NewValidator(ctx, entity.Task{Type: entity.TaskPhoto})
	require.NoError(t, err)

	ok, err = photo.Validate(ctx, "")
	require.NoError(t, err)
	require.True(t, ok)
}

func Test_invalidTaskType(t *testing.T) {
	_, err := taskvalidate.NewValidator(testutil.MockContext(), entity.Task{Type: "karaoke"})
	require.Error(t, err)
}
