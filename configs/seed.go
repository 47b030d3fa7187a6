package configs

import (
	"log"

	"github.com/alibek123/DProject/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads a starter menu so a fresh database is browsable.
func SeedCatalog() error {
	db := DB()

	type mealSeed struct {
		title, slug string
		price       string
		inventory   int
	}
	catalog := []struct {
		name, slug string
		meals      []mealSeed
	}{
		{"Breakfast", "breakfast", []mealSeed{
			{"Omelette", "omelette", "4.50", 30},
			{"Pancakes", "pancakes", "5.00", 25},
		}},
		{"Main Dishes", "main-dishes", []mealSeed{
			{"Beef Lagman", "beef-lagman", "7.80", 20},
			{"Plov", "plov", "6.50", 20},
			{"Manty", "manty", "5.90", 15},
		}},
		{"Drinks", "drinks", []mealSeed{
			{"Green Tea", "green-tea", "1.20", 100},
			{"Ayran", "ayran", "1.50", 60},
		}},
	}

	for _, c := range catalog {
		cat := entity.Category{Slug: c.slug}
		if err := db.Where(entity.Category{Slug: c.slug}).
			Attrs(entity.Category{Name: c.name}).
			FirstOrCreate(&cat).Error; err != nil {
			return err
		}
		for _, m := range c.meals {
			price, err := decimal.NewFromString(m.price)
			if err != nil {
				return err
			}
			meal := entity.Meal{Slug: m.slug, CategoryID: cat.ID}
			if err := db.Where(entity.Meal{Slug: m.slug, CategoryID: cat.ID}).
				Attrs(entity.Meal{Title: m.title, Price: price, AvailableInventory: m.inventory}).
				FirstOrCreate(&meal).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
