package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCitizen inserts a citizen with a unique email.
func SeedCitizen(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.Citizen{Village: "Rampur"})
}

// SeedVolunteer inserts a volunteer with a unique email.
func SeedVolunteer(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.Volunteer{Qualifications: "Civil engineer", IDNumber: "1234-5678-9012", Skills: []string{"roads"}})
}

func seedUser(t *testing.T, pool *pgxpool.Pool, profile domain.Profile) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		Name:         "Test " + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		Profile:      profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var village, qualifications, idNumber *string
	skills := []string{}
	switch p := profile.(type) {
	case domain.Citizen:
		village = &p.Village
	case domain.Volunteer:
		qualifications, idNumber = &p.Qualifications, &p.IDNumber
		if p.Skills != nil {
			skills = p.Skills
		}
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, role, village, qualifications, id_number, skills, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role()), village, qualifications, idNumber, skills, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}
	return u
}

// SeedIssue inserts a reported issue owned by reporter.
func SeedIssue(t *testing.T, pool *pgxpool.Pool, reporter uuid.UUID) domain.Issue {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	issue := domain.NewIssue(reporter, now)
	issue.Title = "Broken handpump " + uniqueSuffix()
	issue.Description = "The handpump near the school does not draw water."
	issue.Category = domain.CategoryWater
	issue.Priority = domain.PriorityHigh
	issue.Location = domain.Location{Lat: domain.DefaultLocation.Lat, Lng: domain.DefaultLocation.Lng, Address: "Rampur main road"}
	issue.Photos = []string{}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO issues (id, title, description, category, status, priority, reported_by, latitude, longitude, address, photos, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		issue.ID, issue.Title, issue.Description, string(issue.Category), string(issue.Status), string(issue.Priority),
		issue.ReportedBy, issue.Location.Lat, issue.Location.Lng, issue.Location.Address, issue.Photos, issue.CreatedAt, issue.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed issue: %v", err)
	}
	return *issue
}
