// Package seed provides database seeding utilities for development and testing.
package seed

import (
	_ "embed"
	"fmt"
	"log"

	"motoisle/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed fixtures.yml
var fixturesYAML []byte

// Options configuration for the seeder
type Options struct {
	// NumMotorcycles adds generated listings on top of the fixture catalog.
	NumMotorcycles int
	// NumReviews adds generated reviews spread over all listings.
	NumReviews int
	// ShouldClean truncates seeded tables first.
	ShouldClean bool
}

type fixtureUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Phone    string `yaml:"phone"`
}

type fixtureShop struct {
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Location       string   `yaml:"location"`
	Phone          string   `yaml:"phone"`
	Email          string   `yaml:"email"`
	Tier           string   `yaml:"tier"`
	Status         string   `yaml:"status"`
	OwnerEmail     string   `yaml:"owner_email"`
	OperatingHours string   `yaml:"operating_hours"`
	PaymentMethods []string `yaml:"payment_methods"`
}

type fixtureMotorcycle struct {
	Name              string   `yaml:"name"`
	Brand             string   `yaml:"brand"`
	Model             string   `yaml:"model"`
	Year              int      `yaml:"year"`
	Category          string   `yaml:"category"`
	PricePerDay       int      `yaml:"price_per_day"`
	Location          string   `yaml:"location"`
	Description       string   `yaml:"description"`
	Shop              string   `yaml:"shop"`
	Featured          bool     `yaml:"featured"`
	DeliveryAvailable bool     `yaml:"delivery_available"`
	DeliveryFee       int      `yaml:"delivery_fee"`
	Deposit           int      `yaml:"deposit"`
	Images            []string `yaml:"images"`
	Features          []string `yaml:"features"`
}

type fixtureBlogPost struct {
	Slug      string   `yaml:"slug"`
	Title     string   `yaml:"title"`
	Excerpt   string   `yaml:"excerpt"`
	Content   string   `yaml:"content"`
	Author    string   `yaml:"author"`
	Category  string   `yaml:"category"`
	Tags      []string `yaml:"tags"`
	Published bool     `yaml:"published"`
	Featured  bool     `yaml:"featured"`
}

type fixtureReview struct {
	Motorcycle string `yaml:"motorcycle"`
	UserName   string `yaml:"user_name"`
	Rating     int    `yaml:"rating"`
	Comment    string `yaml:"comment"`
}

type fixtures struct {
	Users       []fixtureUser       `yaml:"users"`
	Shops       []fixtureShop       `yaml:"shops"`
	Motorcycles []fixtureMotorcycle `yaml:"motorcycles"`
	BlogPosts   []fixtureBlogPost   `yaml:"blog_posts"`
	Reviews     []fixtureReview     `yaml:"reviews"`
}

// Seed populates the database with the fixture catalog, then optionally
// layers generated bulk data on top.
func Seed(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	fx, err := loadFixtures()
	if err != nil {
		return err
	}

	usersByEmail, err := seedUsers(db, fx.Users)
	if err != nil {
		return err
	}
	shopsByName, err := seedShops(db, fx.Shops, usersByEmail)
	if err != nil {
		return err
	}
	motosByName, err := seedMotorcycles(db, fx.Motorcycles, shopsByName)
	if err != nil {
		return err
	}
	if err := seedBlogPosts(db, fx.BlogPosts); err != nil {
		return err
	}
	if err := seedReviews(db, fx.Reviews, motosByName); err != nil {
		return err
	}

	if opts.NumMotorcycles > 0 || opts.NumReviews > 0 {
		factory := NewFactory(db)
		if err := factory.GenerateCatalog(shopsByName, opts.NumMotorcycles, opts.NumReviews); err != nil {
			return err
		}
	}

	log.Printf("Seed complete: %d users, %d shops, %d motorcycles, %d blog posts",
		len(fx.Users), len(fx.Shops), len(fx.Motorcycles), len(fx.BlogPosts))
	return nil
}

// Clean removes all seeded rows. Order matters because of foreign keys.
func Clean(db *gorm.DB) error {
	tables := []interface{}{
		&models.Favorite{},
		&models.Booking{},
		&models.Review{},
		&models.Motorcycle{},
		&models.Shop{},
		&models.BlogPost{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
			return fmt.Errorf("cleaning table %T: %w", table, err)
		}
	}
	return nil
}

func loadFixtures() (*fixtures, error) {
	var fx fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		return nil, fmt.Errorf("parsing seed fixtures: %w", err)
	}
	return &fx, nil
}

func seedUsers(db *gorm.DB, users []fixtureUser) (map[string]*models.User, error) {
	out := make(map[string]*models.User, len(users))
	for _, fu := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(fu.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user := &models.User{
			Name:     fu.Name,
			Email:    fu.Email,
			Password: string(hash),
			Role:     models.Role(fu.Role),
			Phone:    fu.Phone,
		}
		if !user.Role.Valid() {
			return nil, fmt.Errorf("fixture user %q has unknown role %q", fu.Email, fu.Role)
		}
		if err := db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("seeding user %q: %w", fu.Email, err)
		}
		out[fu.Email] = user
	}
	return out, nil
}

func seedShops(db *gorm.DB, shops []fixtureShop, users map[string]*models.User) (map[string]*models.Shop, error) {
	out := make(map[string]*models.Shop, len(shops))
	for _, fs := range shops {
		shop := &models.Shop{
			Name:           fs.Name,
			Description:    fs.Description,
			Location:       fs.Location,
			Phone:          fs.Phone,
			Email:          fs.Email,
			Tier:           models.VerificationTier(fs.Tier),
			Status:         models.ShopStatus(fs.Status),
			OperatingHours: fs.OperatingHours,
			PaymentMethods: fs.PaymentMethods,
		}
		if fs.OwnerEmail != "" {
			owner, ok := users[fs.OwnerEmail]
			if !ok {
				return nil, fmt.Errorf("fixture shop %q references unknown owner %q", fs.Name, fs.OwnerEmail)
			}
			shop.OwnerID = &owner.ID
		}
		if err := db.Create(shop).Error; err != nil {
			return nil, fmt.Errorf("seeding shop %q: %w", fs.Name, err)
		}
		out[fs.Name] = shop
	}
	return out, nil
}

func seedMotorcycles(db *gorm.DB, motos []fixtureMotorcycle, shops map[string]*models.Shop) (map[string]*models.Motorcycle, error) {
	out := make(map[string]*models.Motorcycle, len(motos))
	for _, fm := range motos {
		shop, ok := shops[fm.Shop]
		if !ok {
			return nil, fmt.Errorf("fixture motorcycle %q references unknown shop %q", fm.Name, fm.Shop)
		}
		m := &models.Motorcycle{
			Name:              fm.Name,
			Brand:             fm.Brand,
			Model:             fm.Model,
			Year:              fm.Year,
			Category:          fm.Category,
			PricePerDay:       fm.PricePerDay,
			Location:          fm.Location,
			Description:       fm.Description,
			Images:            fm.Images,
			Features:          fm.Features,
			ShopID:            shop.ID,
			ShopName:          shop.Name,
			Available:         true,
			Featured:          fm.Featured,
			DeliveryAvailable: fm.DeliveryAvailable,
			DeliveryFee:       fm.DeliveryFee,
			Deposit:           fm.Deposit,
		}
		if err := db.Create(m).Error; err != nil {
			return nil, fmt.Errorf("seeding motorcycle %q: %w", fm.Name, err)
		}
		out[fm.Name] = m
	}
	return out, nil
}

func seedBlogPosts(db *gorm.DB, posts []fixtureBlogPost) error {
	for _, fp := range posts {
		post := &models.BlogPost{
			Slug:      fp.Slug,
			Title:     fp.Title,
			Excerpt:   fp.Excerpt,
			Content:   fp.Content,
			Author:    fp.Author,
			Category:  fp.Category,
			Tags:      fp.Tags,
			Published: fp.Published,
			Featured:  fp.Featured,
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("seeding blog post %q: %w", fp.Slug, err)
		}
	}
	return nil
}

func seedReviews(db *gorm.DB, reviews []fixtureReview, motos map[string]*models.Motorcycle) error {
	counts := make(map[uint][2]int) // motorcycleID -> [sum, count]
	for _, fr := range reviews {
		m, ok := motos[fr.Motorcycle]
		if !ok {
			return fmt.Errorf("fixture review references unknown motorcycle %q", fr.Motorcycle)
		}
		review := &models.Review{
			MotorcycleID: m.ID,
			UserName:     fr.UserName,
			Rating:       fr.Rating,
			Comment:      fr.Comment,
		}
		if err := db.Create(review).Error; err != nil {
			return fmt.Errorf("seeding review for %q: %w", fr.Motorcycle, err)
		}
		agg := counts[m.ID]
		agg[0] += fr.Rating
		agg[1]++
		counts[m.ID] = agg
	}

	for id, agg := range counts {
		avg := float64(agg[0]) / float64(agg[1])
		err := db.Model(&models.Motorcycle{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"rating": avg, "review_count": agg[1]}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
