// cmd/seed/main.go
package main

import (
	"context"
	"errors"
	"log"

	"playroster/internal/admin"
	"playroster/internal/config"
	"playroster/internal/registry"
	"playroster/internal/roster"
	"playroster/internal/storage"
	"playroster/pkg/rejection"
)

// Seeds the default admin account, the item catalog and a couple of sample
// children. Safe to run repeatedly: existing records are left alone.
func main() {
	ctx := context.Background()
	cfg := config.FromEnv()

	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	adminSvc := admin.NewService(admin.NewPostgresStore(db))
	if _, err := adminSvc.Create(ctx, "admin@playroster.local", "password"); err != nil {
		if !rejection.HasKind(err, rejection.KindConflict) {
			log.Fatalf("Failed to seed admin: %v", err)
		}
		log.Println("Admin already exists, skipping")
	} else {
		log.Println("Created admin: admin@playroster.local")
	}

	itemStore := registry.NewPostgresStore(db)
	items := []string{
		"Basketball",
		"Football",
		"Rope",
		"Table Tennis Paddle",
		"Jumping Rope",
		"Baseball Bat",
		"Tennis Ball",
	}
	for _, name := range items {
		err := itemStore.Insert(ctx, &registry.Item{Name: name, IsAvailable: true})
		if errors.Is(err, registry.ErrDuplicate) {
			log.Printf("Item already exists: %s", name)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed item %s: %v", name, err)
		}
		log.Printf("Created item: %s", name)
	}

	rosterSvc := roster.NewService(roster.NewPostgresStore(db), nil)
	children := []struct {
		name, email string
	}{
		{"Alice Johnson", "alice@test.com"},
		{"Bob Smith", "bob@test.com"},
		{"Charlie Brown", "charlie@test.com"},
	}
	for _, c := range children {
		if _, err := rosterSvc.Register(ctx, c.name, c.email, "child123"); err != nil {
			if rejection.HasKind(err, rejection.KindConflict) {
				log.Printf("Child already exists: %s", c.name)
				continue
			}
			log.Fatalf("Failed to seed child %s: %v", c.name, err)
		}
		log.Printf("Created child: %s", c.name)
	}

	log.Println("Seeding completed")
}
