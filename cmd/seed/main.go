// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed prepares a database for local use.
//
// It applies pending migrations, upserts the admin and user accounts, and
// stocks a starter catalog when no section exists yet. Running it twice is safe.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/catalog/internal/core/product"
	"github.com/taibuivan/catalog/internal/core/section"
	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/migration"
	pgstore "github.com/taibuivan/catalog/internal/platform/postgres"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/users/auth"
)

type starterProduct struct {
	name  string
	price float64
}

// starterCatalog maps each section to the products created in it.
var starterCatalog = []struct {
	section  string
	products []starterProduct
}{
	{"Electronics", []starterProduct{{"Laptop", 999.99}, {"Smartphone", 699.99}}},
	{"Books", []starterProduct{{"TypeScript Handbook", 29.99}, {"Clean Code", 39.99}}},
	{"Clothing", []starterProduct{{"T-Shirt", 19.99}}},
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", constants.AppName+"-seed"))

	if _, err := config.LoadDotEnv(config.DefaultEnvFiles...); err != nil {
		fail(log, err, "load dotenv")
	}

	cfg, err := config.Load()
	if err != nil {
		fail(log, err, "load configuration")
	}
	if err := cfg.ValidateSeed(); err != nil {
		fail(log, err, "validate seed credentials")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		fail(log, err, "connect to postgres")
	}
	defer pool.Close()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		fail(log, err, "run migrations")
	}

	if err := seedAccounts(ctx, auth.NewUserRepository(pool), cfg, log); err != nil {
		fail(log, err, "seed accounts")
	}

	sections := section.NewService(section.NewPostgresRepository(pool), log)
	products := product.NewService(product.NewPostgresRepository(pool), sections, log)
	if err := seedCatalog(ctx, sections, products, log); err != nil {
		fail(log, err, "seed catalog")
	}

	log.Info("seed_completed")
}

// seedAccounts upserts the two standard accounts, resetting their passwords.
func seedAccounts(ctx context.Context, users auth.UserRepository, cfg *config.Config, log *slog.Logger) error {
	accounts := []struct {
		username string
		password string
		role     sec.UserRole
	}{
		{"admin", cfg.SeedAdminPassword, sec.RoleAdmin},
		{"user", cfg.SeedUserPassword, sec.RoleUser},
	}

	for _, account := range accounts {
		hash, err := sec.HashPassword(account.password)
		if err != nil {
			return fmt.Errorf("hash %s password: %w", account.username, err)
		}

		user := &auth.User{Username: account.username, PasswordHash: hash, Role: account.role}
		if err := users.Upsert(ctx, user); err != nil {
			return fmt.Errorf("upsert %s: %w", account.username, err)
		}
		log.Info("account_seeded", slog.String("username", user.Username), slog.Int64("id", user.ID))
	}

	return nil
}

// seedCatalog inserts the starter catalog unless any section already exists.
func seedCatalog(ctx context.Context, sections *section.Service, products *product.Service, log *slog.Logger) error {
	existing, err := sections.ListSections(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("catalog_seed_skipped", slog.Int("sections", len(existing)))
		return nil
	}

	for _, entry := range starterCatalog {
		created, err := sections.CreateSection(ctx, section.CreateInput{Name: entry.section})
		if err != nil {
			return fmt.Errorf("create section %s: %w", entry.section, err)
		}

		for _, item := range entry.products {
			_, err := products.CreateProduct(ctx, product.CreateInput{
				Name:      item.name,
				Price:     item.price,
				SectionID: created.ID,
			})
			if err != nil {
				return fmt.Errorf("create product %s: %w", item.name, err)
			}
		}
	}

	log.Info("catalog_seeded", slog.Int("sections", len(starterCatalog)))
	return nil
}

func fail(log *slog.Logger, err error, step string) {
	log.Error("seed_failure", slog.String("step", step), slog.Any("error", err))
	os.Exit(1)
}
