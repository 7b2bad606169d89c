package testutil

import (
	"context"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	Club1ID = "fc-united"
	Club2ID = "athletic-city"

	// Experience1 is a two-task experience of Club1: a founding-year quiz and
	// a stadium check-in.
	Experience1ID int64 = 1

	// Experience2 is a three-task experience of Club1 whose reward does not
	// divide evenly over the tasks.
	Experience2ID int64 = 2

	// Experience3 is an inactive experience of Club2.
	Experience3ID int64 = 3
)

func CreateFixtureDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := entity.MigrateTable(db); err != nil {
		panic(err)
	}

	InsertClubs(db)
	InsertExperiences(db)

	return db
}

func InsertClubs(db *gorm.DB) {
	clubRepo := repository.NewClubRepository(db)

	err := clubRepo.Create(context.Background(), &entity.Club{
		ID:             Club1ID,
		Name:           "FC United",
		ShortName:      "FCU",
		FullName:       "Football Club United",
		Description:    []byte("The club of the north stand."),
		PrimaryColor:   "#d40000",
		SecondaryColor: "#ffffff",
		Slogan:         "One club, one heart",
	})
	if err != nil {
		panic(err)
	}

	err = clubRepo.Create(context.Background(), &entity.Club{
		ID:        Club2ID,
		Name:      "Athletic City",
		ShortName: "ATC",
		FullName:  "Athletic Club City",
	})
	if err != nil {
		panic(err)
	}
}

func InsertExperiences(db *gorm.DB) {
	experienceRepo := repository.NewExperienceRepository(db)

	err := experienceRepo.Create(context.Background(), &entity.Experience{
		ID:           Experience1ID,
		ClubID:       Club1ID,
		Name:         "Matchday Warmup",
		Description:  []byte("Prove you know the club before kickoff."),
		IsActive:     true,
		RewardAmount: 100,
		RewardToken:  "FAN",
		Tasks: entity.Array[entity.Task]{
			{
				ID:     11,
				Name:   "Founding year",
				Type:   entity.TaskQuiz,
				Data:   `{"question":"In which year was the club founded?","options":["1968","1970","1974"]}`,
				Answer: "1970",
			},
			{
				ID:   12,
				Name: "Stadium check-in",
				Type: entity.TaskCheckIn,
				Data: "North Stand",
			},
		},
	})
	if err != nil {
		panic(err)
	}

	err = experienceRepo.Create(context.Background(), &entity.Experience{
		ID:           Experience2ID,
		ClubID:       Club1ID,
		Name:         "Club Tour",
		IsActive:     true,
		RewardAmount: 100,
		RewardToken:  "FAN",
		Tasks: entity.Array[entity.Task]{
			{
				ID:   21,
				Name: "Scan the museum code",
				Type: entity.TaskQRCode,
				Data: "museum-secret",
			},
			{
				ID:   22,
				Name: "Trophy room check-in",
				Type: entity.TaskCheckIn,
				Data: "Trophy Room",
			},
			{
				ID:   23,
				Name: "Photo at the pitch",
				Type: entity.TaskPhoto,
			},
		},
	})
	if err != nil {
		panic(err)
	}

	err = experienceRepo.Create(context.Background(), &entity.Experience{
		ID:           Experience3ID,
		ClubID:       Club2ID,
		Name:         "Preseason Special",
		IsActive:     false,
		RewardAmount: 50,
		RewardToken:  "FAN",
		Tasks: entity.Array[entity.Task]{
			{
				ID:   31,
				Name: "Kickoff check-in",
				Type: entity.TaskCheckIn,
				Data: "Main Gate",
			},
		},
	})
	if err != nil {
		panic(err)
	}
}
