package entity

import (
	"time"

	"github.com/fanpassport/backend/pkg/enum"
)

type TaskType string

var (
	TaskQuiz    = enum.New(TaskType("quiz"))
	TaskQRCode  = enum.New(TaskType("qr_code"))
	TaskCheckIn = enum.New(TaskType("check_in"))
	TaskPhoto   = enum.New(TaskType("photo"))
)

// Task is one unit of work inside an experience. Its position in the Tasks
// array is significant: completion-set membership is tracked by sequence
// index, not by the task id.
type Task struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        TaskType `json:"type"`

	// Data holds the type-specific payload: the quiz prompt for quiz tasks,
	// the expected scanned value for qr_code tasks, a location tag for
	// check_in tasks. Unused for photo tasks.
	Data string `json:"data"`

	// Answer is the expected submission for quiz tasks.
	Answer string `json:"answer"`
}

// Experience is a club-scoped ordered collection of tasks with an aggregate
// reward. Experiences are immutable at runtime; they are loaded into the
// catalog by the seed command and only ever read after that.
type Experience struct {
	ID        int64 `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ClubID string
	Club   Club `gorm:"foreignKey:ClubID"`

	Name        string
	Description []byte `gorm:"type:longtext"`
	IsActive    bool

	// RewardAmount is denominated in base units of RewardToken.
	RewardAmount int64
	RewardToken  string

	Tasks Array[Task] `gorm:"type:longtext"`
}
