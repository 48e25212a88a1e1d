package seed

import (
	"testing"

	"motoisle/internal/database"
	"motoisle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

func TestSeedFixtures(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{}))

	var userCount, shopCount, motoCount, postCount, reviewCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Shop{}).Count(&shopCount)
	db.Model(&models.Motorcycle{}).Count(&motoCount)
	db.Model(&models.BlogPost{}).Count(&postCount)
	db.Model(&models.Review{}).Count(&reviewCount)

	assert.Equal(t, int64(3), userCount)
	assert.Equal(t, int64(3), shopCount)
	assert.Equal(t, int64(3), motoCount)
	assert.Equal(t, int64(2), postCount)
	assert.Equal(t, int64(3), reviewCount)
}

func TestSeedDemoUserPassword(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{}))

	var user models.User
	require.NoError(t, db.Where("email = ?", "demo@example.com").First(&user).Error)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestSeedLinksShopOwner(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{}))

	var owner models.User
	require.NoError(t, db.Where("email = ?", "owner@siquijor-rides.ph").First(&owner).Error)

	var shop models.Shop
	require.NoError(t, db.Where("name = ?", "Siquijor Rides").First(&shop).Error)
	require.NotNil(t, shop.OwnerID)
	assert.Equal(t, owner.ID, *shop.OwnerID)
	assert.Equal(t, models.ShopStatusActive, shop.Status)

	var pending models.Shop
	require.NoError(t, db.Where("name = ?", "Lazi Coast Rentals").First(&pending).Error)
	assert.Nil(t, pending.OwnerID)
	assert.Equal(t, models.ShopStatusPending, pending.Status)
}

func TestSeedAggregatesRatings(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{}))

	var click models.Motorcycle
	require.NoError(t, db.Where("name = ?", "Honda Click 150i").First(&click).Error)
	assert.Equal(t, 4.5, click.Rating)
	assert.Equal(t, 2, click.ReviewCount)

	var tmx models.Motorcycle
	require.NoError(t, db.Where("name = ?", "Honda TMX 155").First(&tmx).Error)
	assert.Zero(t, tmx.Rating)
	assert.Zero(t, tmx.ReviewCount)
}

func TestSeedCleanIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{}))
	require.NoError(t, Seed(db, Options{ShouldClean: true}))

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(3), userCount)
}

func TestSeedGeneratesBulkCatalog(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{NumMotorcycles: 10, NumReviews: 20}))

	var motoCount, reviewCount int64
	db.Model(&models.Motorcycle{}).Count(&motoCount)
	db.Model(&models.Review{}).Count(&reviewCount)

	assert.Equal(t, int64(13), motoCount)
	assert.Equal(t, int64(23), reviewCount)

	// Generated listings belong to fixture shops and start available.
	var generated []models.Motorcycle
	require.NoError(t, db.Where("id > ?", 3).Find(&generated).Error)
	for _, m := range generated {
		assert.NotZero(t, m.ShopID)
		assert.True(t, m.Available)
	}
}
