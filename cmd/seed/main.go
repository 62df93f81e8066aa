package main

import (
	"context"
	"errors"
	"log"

	"feedbackboard/internal/config"
	"feedbackboard/internal/db"
	apperrors "feedbackboard/internal/errors"
	"feedbackboard/internal/model"
	"feedbackboard/internal/repository"
	"feedbackboard/internal/service"
)

type seedUser struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Feedback  []seedFeedback
}

type seedFeedback struct {
	Title   string
	Content string
}

var seedUsers = []seedUser{
	{
		Username: "demo", Password: "demo1234",
		Email: "demo@example.com", FirstName: "Demo", LastName: "User",
		Feedback: []seedFeedback{
			{Title: "First impressions", Content: "Signed up without any trouble."},
			{Title: "Feature request", Content: "Would love a dark mode."},
		},
	},
	{
		Username: "sample", Password: "sample1234",
		Email: "sample@example.com", FirstName: "Sample", LastName: "Person",
		Feedback: []seedFeedback{
			{Title: "Thanks", Content: "The board does exactly what it says."},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	users := service.NewUserService(userRepo)

	ctx := context.Background()
	created := 0
	for _, su := range seedUsers {
		user, err := users.Register(ctx, su.Username, su.Password, su.Email, su.FirstName, su.LastName)
		if errors.Is(err, apperrors.ErrUsernameTaken) || errors.Is(err, apperrors.ErrEmailTaken) {
			log.Printf("Skipping %s: already seeded", su.Username)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", su.Username, err)
		}
		for _, sf := range su.Feedback {
			fb := &model.Feedback{Title: sf.Title, Content: sf.Content, Username: user.Username}
			if err := feedbackRepo.Create(ctx, fb); err != nil {
				log.Fatalf("Failed to seed feedback for %s: %v", su.Username, err)
			}
		}
		created++
	}

	log.Printf("Seed complete: %d user(s) created", created)
}
