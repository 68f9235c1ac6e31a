package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"lunch_manager/internal/config"
	"lunch_manager/internal/database"
	"lunch_manager/internal/migrations"
	"lunch_manager/internal/models"
	"lunch_manager/internal/repository"
)

// Seeds a week of demo menu items for local development.
func main() {
	fmt.Println("Seeding demo menu...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	if err := migrations.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	menuRepo := repository.NewMenuItemRepository(db)

	type seedItem struct {
		title       string
		description string
		price       string
		daysAhead   int
	}
	seeds := []seedItem{
		{"Butter Chicken Bowl", "Basmati rice, naan, cucumber salad", "12.50", 1},
		{"Veggie Pad Thai", "Rice noodles, tofu, peanuts, lime", "11.00", 1},
		{"BBQ Pulled Pork Sandwich", "Coleslaw and kettle chips", "13.25", 2},
		{"Harvest Grain Salad", "Quinoa, roasted squash, feta", "10.75", 3},
		{"Chicken Shawarma Plate", "Garlic sauce, pickled turnip, rice", "12.95", 4},
	}

	now := time.Now().In(cfg.Location)
	for _, seed := range seeds {
		serveDay := now.AddDate(0, 0, seed.daysAhead)
		serveDate := serveDay.Format("2006-01-02")
		// orders close at 6pm the day before serving
		deadline := time.Date(serveDay.Year(), serveDay.Month(), serveDay.Day(), 18, 0, 0, 0, cfg.Location).AddDate(0, 0, -1)

		item := models.MenuItem{
			Title:         seed.title,
			Description:   seed.description,
			Price:         decimal.RequireFromString(seed.price),
			ServeDate:     &serveDate,
			OrderDeadline: &deadline,
			IsActive:      true,
		}
		if err := menuRepo.Create(&item); err != nil {
			logrus.Warnf("Failed to seed %q: %v", seed.title, err)
			continue
		}
		fmt.Printf("Seeded %s for %s\n", seed.title, serveDate)
	}

	fmt.Println("Demo menu seeding completed!")
}
