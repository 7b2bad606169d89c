package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RewardEntry is the per-task share of an experience reward. One entry is
// created at the moment its task completion is recorded.
type RewardEntry struct {
	Amount    int64      `json:"amount"`
	Token     string     `json:"token"`
	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}

// RewardMap maps a task sequence index to its reward entry.
type RewardMap map[int]RewardEntry

func (m *RewardMap) Scan(value any) error {
	switch t := value.(type) {
	case string:
		return json.Unmarshal([]byte(t), m)
	case []byte:
		return json.Unmarshal(t, m)
	default:
		return fmt.Errorf("cannot scan invalid data type %T", value)
	}
}

func (m RewardMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// UserProgress records one user's advancement through one experience. Records
// are created on start, mutated by task completions and claims, and never
// deleted.
type UserProgress struct {
	Base

	// UserAddress is stored lowercased so checksummed and lowercase forms of
	// the same wallet address map to the same record.
	UserAddress  string `gorm:"uniqueIndex:idx_progress_user_experience"`
	ExperienceID int64  `gorm:"uniqueIndex:idx_progress_user_experience"`

	Started   bool
	Completed bool

	// CompletedTasks holds task sequence indices in insertion order.
	CompletedTasks Array[int] `gorm:"type:longtext"`

	// CompletionDate is stamped exactly once, when the completed set covers
	// every task of the experience.
	CompletionDate *time.Time

	Rewards RewardMap `gorm:"type:longtext"`

	// LastRewardClaimDate is the terminal claim marker. Once set, the external
	// minting collaborator is authorized and no further claim is accepted.
	LastRewardClaimDate *time.Time
}

// Clone returns a deep copy, so callers can hand records across store
// boundaries without sharing the completed-task slice or the reward map.
func (p *UserProgress) Clone() *UserProgress {
	if p == nil {
		return nil
	}

	clone := *p
	clone.CompletedTasks = append(Array[int]{}, p.CompletedTasks...)
	clone.Rewards = RewardMap{}
	for index, reward := range p.Rewards {
		clone.Rewards[index] = reward
	}

	return &clone
}
