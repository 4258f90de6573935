package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"campmed/internal/config"
	"campmed/internal/db"
	"campmed/internal/logger"
	"campmed/internal/model"
	"campmed/internal/repository"
)

const seedTimeout = 2 * time.Minute

func main() {
	campsFile := flag.String("camps", "", "path to a JSON array of camps to upsert by name")
	admins := flag.String("admin", "", "comma-separated emails to promote to admin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)

	if err := run(cfg, log, *campsFile, splitEmails(*admins)); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger, campsFile string, admins []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	mongo, err := db.NewMongo(ctx, cfg.MongoConnectionURI(), cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer func() { _ = mongo.Close(context.Background()) }()

	if err := mongo.EnsureIndexes(ctx); err != nil {
		return err
	}
	log.Info("connected", "database", cfg.MongoDatabase)

	colls := mongo.Collections()

	if campsFile != "" {
		camps, err := readCamps(campsFile)
		if err != nil {
			return err
		}
		created, updated, err := seedCamps(ctx, repository.NewCampRepository(colls.Camps), camps)
		if err != nil {
			return err
		}
		log.Info("camps seeded", "created", created, "updated", updated)
	}

	if len(admins) > 0 {
		if err := promoteAdmins(ctx, repository.NewUserRepository(colls.Users), admins); err != nil {
			return err
		}
		log.Info("admins promoted", "emails", admins)
	}
	return nil
}

// readCamps loads a JSON array of camps from path.
func readCamps(path string) ([]model.Camp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read camps file: %w", err)
	}

	var camps []model.Camp
	if err := json.Unmarshal(data, &camps); err != nil {
		return nil, fmt.Errorf("parse camps file: %w", err)
	}
	return camps, nil
}

// seedCamps upserts camps by name, leaving existing participant counts alone.
func seedCamps(ctx context.Context, repo repository.CampRepository, camps []model.Camp) (created, updated int, err error) {
	for i := range camps {
		camp := &camps[i]
		if strings.TrimSpace(camp.CampName) == "" {
			return created, updated, fmt.Errorf("camp %d has no campName", i)
		}

		res, err := repo.UpsertByName(ctx, camp)
		if err != nil {
			return created, updated, fmt.Errorf("upsert camp %q: %w", camp.CampName, err)
		}
		if res.UpsertedCount > 0 {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

// promoteAdmins grants the admin role. No HTTP route can do this.
func promoteAdmins(ctx context.Context, repo repository.UserRepository, emails []string) error {
	for _, email := range emails {
		if _, err := repo.SetRole(ctx, email, model.RoleAdmin); err != nil {
			return fmt.Errorf("promote %s: %w", email, err)
		}
	}
	return nil
}

func splitEmails(raw string) []string {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		if email := strings.TrimSpace(part); email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}
