package seed

import (
	"fmt"
	"math/rand"
	"time"

	"motoisle/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var (
	bikeBrands     = []string{"Honda", "Yamaha", "Suzuki", "Kawasaki", "Kymco"}
	bikeCategories = []string{"Scooter", "Underbone", "Dirt Bike", "Big Bike"}
	bikeLocations  = []string{"San Juan", "Larena", "Lazi", "Maria", "Siquijor Town", "Enrique Villanueva"}
	bikeFeatures   = []string{"ABS", "USB charger", "Under-seat storage", "Phone holder", "LED lights", "Top box", "Smart key"}
)

// Factory builds generated domain entities and persists them. It layers bulk
// data on top of the fixture catalog for load-realistic development databases.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// GenerateCatalog creates numMotorcycles random listings spread over the
// given shops, then numReviews random reviews spread over all listings.
func (f *Factory) GenerateCatalog(shops map[string]*models.Shop, numMotorcycles, numReviews int) error {
	shopList := make([]*models.Shop, 0, len(shops))
	for _, shop := range shops {
		shopList = append(shopList, shop)
	}
	if len(shopList) == 0 {
		return fmt.Errorf("cannot generate listings without shops")
	}

	for i := 0; i < numMotorcycles; i++ {
		shop := shopList[f.r.Intn(len(shopList))]
		if err := f.CreateMotorcycle(shop); err != nil {
			return err
		}
	}

	if numReviews > 0 {
		var motos []models.Motorcycle
		if err := f.db.Find(&motos).Error; err != nil {
			return err
		}
		for i := 0; i < numReviews && len(motos) > 0; i++ {
			m := motos[f.r.Intn(len(motos))]
			if err := f.CreateReview(m.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateMotorcycle persists a random listing under the given shop.
func (f *Factory) CreateMotorcycle(shop *models.Shop, overrides ...func(*models.Motorcycle)) error {
	brand := bikeBrands[f.r.Intn(len(bikeBrands))]
	model := fmt.Sprintf("%s %d", gofakeit.CarModel(), 100+f.r.Intn(5)*25)

	m := &models.Motorcycle{
		Name:              fmt.Sprintf("%s %s", brand, model),
		Brand:             brand,
		Model:             model,
		Year:              2018 + f.r.Intn(7),
		Category:          bikeCategories[f.r.Intn(len(bikeCategories))],
		PricePerDay:       (5 + f.r.Intn(16)) * 100,
		Location:          bikeLocations[f.r.Intn(len(bikeLocations))],
		Description:       gofakeit.Paragraph(1, 2, 8, " "),
		Images:            models.StringList{fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())},
		Features:          f.pickFeatures(),
		ShopID:            shop.ID,
		ShopName:          shop.Name,
		Available:         true,
		Featured:          f.r.Intn(5) == 0,
		DeliveryAvailable: f.r.Intn(2) == 0,
		Deposit:           (5 + f.r.Intn(11)) * 100,
	}
	if m.DeliveryAvailable {
		m.DeliveryFee = (1 + f.r.Intn(3)) * 100
	}

	for _, override := range overrides {
		override(m)
	}
	return f.db.Create(m).Error
}

// CreateReview persists a random review against a listing. Rating skews
// positive the way real rental reviews do.
func (f *Factory) CreateReview(motorcycleID uint) error {
	ratings := []int{3, 4, 4, 5, 5, 5}
	review := &models.Review{
		MotorcycleID: motorcycleID,
		UserName:     gofakeit.FirstName() + " " + gofakeit.LastName()[:1] + ".",
		Rating:       ratings[f.r.Intn(len(ratings))],
		Comment:      gofakeit.Sentence(10),
		CreatedAt:    time.Now().Add(-time.Duration(f.r.Intn(90*24)) * time.Hour),
	}
	return f.db.Create(review).Error
}

func (f *Factory) pickFeatures() models.StringList {
	n := 2 + f.r.Intn(3)
	picked := make(models.StringList, 0, n)
	perm := f.r.Perm(len(bikeFeatures))
	for i := 0; i < n; i++ {
		picked = append(picked, bikeFeatures[perm[i]])
	}
	return picked
}
