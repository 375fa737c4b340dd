package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"foodshare/internal/config"
	"foodshare/internal/database"
	"foodshare/internal/model"
)

// Seeds the database with a small working data set so the dashboard and
// reports have something to show. Running against a database that already
// holds providers is a no-op.

type seedProvider struct {
	name, typ, address, city, contact string
}

type seedReceiver struct {
	name, typ, city, contact string
}

type seedListing struct {
	food     string
	quantity int
	// days until expiry relative to the seeding day; negative means
	// already expired
	days     int
	provider int // index into the providers slice
	location string
	foodType string
	mealType string
}

type seedClaim struct {
	listing  int // index into the listings slice
	receiver int // index into the receivers slice
	status   string
}

var providers = []seedProvider{
	{"Acme Grocers", "Grocery Store", "12 Market Road", "Springfield", "+1-555-0101"},
	{"Harvest Table", "Restaurant", "8 Oak Avenue", "Springfield", "+1-555-0102"},
	{"Daily Loaf Bakery", "Bakery", "3 Mill Lane", "Riverton", "+1-555-0103"},
	{"Green Basket", "Supermarket", "45 Commerce Street", "Riverton", "+1-555-0104"},
	{"Corner Deli", "Restaurant", "77 Elm Street", "Lakeside", "+1-555-0105"},
	{"Sunrise Caterers", "Catering Service", "19 Station Road", "Lakeside", "+1-555-0106"},
	{"Fresh Fields", "Grocery Store", "2 Harbor Way", "Portsmouth", "+1-555-0107"},
	{"Golden Wok", "Restaurant", "31 King Street", "Portsmouth", "+1-555-0108"},
}

var receivers = []seedReceiver{
	{"Springfield Shelter", "Shelter", "Springfield", "+1-555-0201"},
	{"Riverton Food Bank", "NGO", "Riverton", "+1-555-0202"},
	{"Lakeside Community Kitchen", "Charity", "Lakeside", "+1-555-0203"},
	{"Hope House", "Shelter", "Portsmouth", "+1-555-0204"},
	{"Open Hands Trust", "NGO", "Springfield", "+1-555-0205"},
	{"St. Mary's Pantry", "Charity", "Riverton", "+1-555-0206"},
}

var listings = []seedListing{
	{"Vegetable Curry Trays", 12, 1, 1, "Springfield", model.FoodTypeVegetarian, model.MealTypeDinner},
	{"Sandwich Platters", 8, 2, 4, "Lakeside", model.FoodTypeNonVegetarian, model.MealTypeLunch},
	{"Sourdough Loaves", 30, 2, 2, "Riverton", model.FoodTypeVegan, model.MealTypeBreakfast},
	{"Fruit Boxes", 25, 5, 0, "Springfield", model.FoodTypeVegan, model.MealTypeSnacks},
	{"Rice and Dal Packs", 40, 6, 3, "Riverton", model.FoodTypeVegetarian, model.MealTypeDinner},
	{"Chicken Biryani Trays", 15, 1, 7, "Portsmouth", model.FoodTypeNonVegetarian, model.MealTypeLunch},
	{"Pastry Assortment", 18, 3, 2, "Riverton", model.FoodTypeVegetarian, model.MealTypeSnacks},
	{"Salad Bowls", 10, 0, 6, "Portsmouth", model.FoodTypeVegan, model.MealTypeLunch},
	{"Soup Containers", 22, 4, 5, "Lakeside", model.FoodTypeVegetarian, model.MealTypeDinner},
	{"Breakfast Burritos", 6, 1, 1, "Springfield", model.FoodTypeNonVegetarian, model.MealTypeBreakfast},
	{"Tinned Goods Crate", 60, 90, 3, "Riverton", model.FoodTypeOther, model.MealTypeOther},
	{"Noodle Boxes", 4, -1, 7, "Portsmouth", model.FoodTypeVegetarian, model.MealTypeDinner},
}

var claims = []seedClaim{
	{0, 0, model.ClaimPending},
	{2, 1, model.ClaimCompleted},
	{4, 5, model.ClaimPending},
	{5, 3, model.ClaimCompleted},
	{8, 2, model.ClaimCancelled},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM providers").Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect providers: %w", err)
	}
	if count > 0 {
		logger.Info().Int("providers", count).Msg("database already seeded, nothing to do")
		return nil
	}

	if err := seed(ctx, db); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info().
		Int("providers", len(providers)).
		Int("receivers", len(receivers)).
		Int("listings", len(listings)).
		Int("claims", len(claims)).
		Msg("sample data loaded")
	return nil
}

func seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	providerIDs := make([]int64, len(providers))
	for i, p := range providers {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO providers (Name, Type, Address, City, Contact) VALUES (?, ?, ?, ?, ?)`,
			p.name, p.typ, p.address, p.city, p.contact)
		if err != nil {
			return fmt.Errorf("insert provider %q: %w", p.name, err)
		}
		if providerIDs[i], err = res.LastInsertId(); err != nil {
			return err
		}
	}

	receiverIDs := make([]int64, len(receivers))
	for i, r := range receivers {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO receivers (Name, Type, City, Contact) VALUES (?, ?, ?, ?)`,
			r.name, r.typ, r.city, r.contact)
		if err != nil {
			return fmt.Errorf("insert receiver %q: %w", r.name, err)
		}
		if receiverIDs[i], err = res.LastInsertId(); err != nil {
			return err
		}
	}

	today := time.Now()
	listingIDs := make([]int64, len(listings))
	for i, l := range listings {
		expiry := today.AddDate(0, 0, l.days).Format("2006-01-02")
		provider := providers[l.provider]

		res, err := tx.ExecContext(ctx,
			`INSERT INTO food_listings
				(Food_Name, Quantity, Expiry_Date, Provider_ID, Provider_Type,
				 Location, Food_Type, Meal_Type, Days_To_Expiry, Quantity_Category)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			l.food, l.quantity, expiry, providerIDs[l.provider], provider.typ,
			l.location, l.foodType, l.mealType, l.days, model.CategorizeQuantity(l.quantity))
		if err != nil {
			return fmt.Errorf("insert listing %q: %w", l.food, err)
		}
		if listingIDs[i], err = res.LastInsertId(); err != nil {
			return err
		}
	}

	for _, c := range claims {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO claims (Food_ID, Receiver_ID, Status) VALUES (?, ?, ?)`,
			listingIDs[c.listing], receiverIDs[c.receiver], c.status)
		if err != nil {
			return fmt.Errorf("insert claim for listing %d: %w", c.listing, err)
		}
	}

	return tx.Commit()
}
