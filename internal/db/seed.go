package db

import (
	"fmt"
	"time"

	"github.com/aqualims/aqualims/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults populates an empty database with the two starter accounts and
// one sample record, mirroring a first run of the legacy system. Existing
// data is never touched.
func SeedDefaults(repositories *Repositories, location *time.Location) error {
	if location == nil {
		location = time.UTC
	}
	now := time.Now().In(location)

	userCount, err := repositories.Users.CountUsers()
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount == 0 {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(models.DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default password: %w", err)
		}

		seedUsers := []models.User{
			{
				ID:           uuid.NewString(),
				Username:     "admin",
				Email:        "admin@aqualims.com",
				Role:         models.RoleAdmin,
				IsActive:     true,
				PasswordHash: string(passwordHash),
				CreatedAt:    now,
			},
			{
				ID:           uuid.NewString(),
				Username:     "tech1",
				Email:        "tech1@aqualims.com",
				Role:         models.RoleUser,
				IsActive:     true,
				PasswordHash: string(passwordHash),
				CreatedAt:    now,
			},
		}
		for index := range seedUsers {
			if err := repositories.Users.Create(&seedUsers[index]); err != nil {
				return fmt.Errorf("seed user %s: %w", seedUsers[index].Username, err)
			}
		}
	}

	recordCount, err := repositories.Records.CountRecords()
	if err != nil {
		return fmt.Errorf("count records: %w", err)
	}
	if recordCount == 0 {
		technician, found, err := repositories.Users.FindByIdentifier("tech1")
		if err != nil {
			return fmt.Errorf("load seed technician: %w", err)
		}
		sample := models.LabRecord{
			ID:              uuid.NewString(),
			Date:            now.Format("2006-01-02"),
			SamplePoint:     models.SamplePoints[0],
			Attribute:       models.Attributes[0],
			Value:           "<100",
			Limit:           models.DefaultLimitFor(models.Attributes[0]),
			Observation24h:  "Clear",
			Observation48h:  "Clear",
			Observation72h:  "Clear",
			NegativeControl: "Clear",
			Remarks:         "Routine check",
			CreatedAt:       now,
		}
		if found {
			sample.CreatedBy = technician.Username
			sample.CreatedByID = technician.ID
		}
		if err := repositories.Records.Create(&sample); err != nil {
			return fmt.Errorf("seed sample record: %w", err)
		}
	}

	return nil
}
