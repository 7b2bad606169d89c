package entity

import "time"

type Club struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name           string
	ShortName      string
	FullName       string
	Description    []byte `gorm:"type:longtext"`
	LogoURL        string
	PrimaryColor   string
	SecondaryColor string
	Slogan         string
	Tagline        string
}
