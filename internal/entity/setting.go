package entity

import "time"

const SettingCurrentClub = "current_club"

type Setting struct {
	Key       string `gorm:"primarykey"`
	Value     string
	UpdatedAt time.Time
}
