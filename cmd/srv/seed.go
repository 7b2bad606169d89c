package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/fanpassport/backend/internal/entity"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/crypto"
	"github.com/urfave/cli/v2"
)

// catalogFile is the json shape of a seedable catalog. Descriptions are plain
// strings in the file and stored as blobs in the database.
type catalogFile struct {
	Clubs []struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		ShortName      string `json:"short_name"`
		FullName       string `json:"full_name"`
		Description    string `json:"description"`
		LogoURL        string `json:"logo_url"`
		PrimaryColor   string `json:"primary_color"`
		SecondaryColor string `json:"secondary_color"`
		Slogan         string `json:"slogan"`
		Tagline        string `json:"tagline"`
	} `json:"clubs"`

	Experiences []struct {
		ID           int64                     `json:"id"`
		ClubID       string                    `json:"club_id"`
		Name         string                    `json:"name"`
		Description  string                    `json:"description"`
		IsActive     bool                      `json:"is_active"`
		RewardAmount int64                     `json:"reward_amount"`
		RewardToken  string                    `json:"reward_token"`
		Tasks        entity.Array[entity.Task] `json:"tasks"`
	} `json:"experiences"`
}

func (s *srv) seed(ct *cli.Context) error {
	if ct.Args().Len() != 1 {
		return errors.New("expected exactly one catalog path")
	}

	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()

	b, err := os.ReadFile(ct.Args().First())
	if err != nil {
		return err
	}

	catalog := catalogFile{}
	if err := json.Unmarshal(b, &catalog); err != nil {
		return err
	}

	ctx := s.context()
	clubRepo := repository.NewClubRepository(s.db)
	experienceRepo := repository.NewExperienceRepository(s.db)

	for _, club := range catalog.Clubs {
		err := clubRepo.Create(ctx, &entity.Club{
			ID:             club.ID,
			Name:           club.Name,
			ShortName:      club.ShortName,
			FullName:       club.FullName,
			Description:    []byte(club.Description),
			LogoURL:        club.LogoURL,
			PrimaryColor:   club.PrimaryColor,
			SecondaryColor: club.SecondaryColor,
			Slogan:         club.Slogan,
			Tagline:        club.Tagline,
		})
		if err != nil {
			return err
		}

		s.logger.Infof("Seeded club %s", club.ID)
	}

	for _, experience := range catalog.Experiences {
		// A qr_code task without an expected value gets a generated secret, to
		// be printed on the physical code.
		for i, task := range experience.Tasks {
			if task.Type == entity.TaskQRCode && task.Data == "" {
				experience.Tasks[i].Data = crypto.GenerateRandomAlphabet(16)
				s.logger.Infof("Generated qr secret %s for task %d", experience.Tasks[i].Data, task.ID)
			}
		}

		err := experienceRepo.Create(ctx, &entity.Experience{
			ID:           experience.ID,
			ClubID:       experience.ClubID,
			Name:         experience.Name,
			Description:  []byte(experience.Description),
			IsActive:     experience.IsActive,
			RewardAmount: experience.RewardAmount,
			RewardToken:  experience.RewardToken,
			Tasks:        experience.Tasks,
		})
		if err != nil {
			return err
		}

		s.logger.Infof("Seeded experience %d of club %s", experience.ID, experience.ClubID)
	}

	return nil
}
