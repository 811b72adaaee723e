package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"os"

	"secondlook/internal/config"
	"secondlook/internal/domain/models"
	"secondlook/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var categoriesYAML []byte

type categoryCatalog struct {
	Categories []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"categories"`
}

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed categories (for use with shell scripts)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.SetupSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	// Exit early if schema-only mode
	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	// Parse the embedded category catalog
	var catalog categoryCatalog
	if err := yaml.Unmarshal(categoriesYAML, &catalog); err != nil {
		log.Fatalf("Failed to parse category catalog: %v", err)
	}

	// Create category repository
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	categoryRepo := postgres.NewCategoryRepository(repoConfig)

	// Upsert categories. Ids in the catalog are fixed, so re-running
	// the seeder is safe.
	log.Printf("📝 Seeding %d categories...", len(catalog.Categories))
	for i, entry := range catalog.Categories {
		id, err := uuid.Parse(entry.ID)
		if err != nil {
			log.Fatalf("❌ Invalid category id '%s': %v", entry.ID, err)
		}

		category := &models.Category{ID: id, Name: entry.Name}
		if err := categoryRepo.Upsert(ctx, category); err != nil {
			log.Printf("❌ Failed to upsert category '%s': %v", entry.Name, err)
			continue
		}

		log.Printf("✅ Category %d/%d: %s", i+1, len(catalog.Categories), entry.Name)
	}

	log.Println("🎉 Seeding complete!")
}
