package server

import (
	"fmt"
	"net/http"
	"testing"

	"motoisle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createShop(t *testing.T, db *gorm.DB, name string, status models.ShopStatus, tier models.VerificationTier) *models.Shop {
	t.Helper()
	shop := &models.Shop{Name: name, Location: "San Juan", Status: status, Tier: tier}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func TestShopModerationFlow(t *testing.T) {
	s, app, db := newTestServer(t)
	admin := createTestUser(t, db, "admin@example.com", models.RoleAdmin)
	token := authToken(t, s, admin)

	pending := createShop(t, db, "New Shop", models.ShopStatusPending, models.TierUnverified)

	// Approve: pending -> active.
	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/shops/%d/approve", pending.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var shop models.Shop
	decodeBody(t, resp, &shop)
	assert.Equal(t, models.ShopStatusActive, shop.Status)

	// Approving an already-active shop fails.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/shops/%d/approve", pending.ID), token, nil)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Verify: active shops can be promoted to a trust tier.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/shops/%d/verify", pending.ID), token, map[string]string{
		"tier": "premium",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &shop)
	assert.Equal(t, models.TierPremium, shop.Tier)
	assert.True(t, shop.Premium())

	// Suspend: active -> suspended.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/shops/%d/suspend", pending.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &shop)
	assert.Equal(t, models.ShopStatusSuspended, shop.Status)

	// Reinstate: suspended -> active.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/shops/%d/reinstate", pending.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &shop)
	assert.Equal(t, models.ShopStatusActive, shop.Status)
}

func TestRejectShop(t *testing.T) {
	s, app, db := newTestServer(t)
	admin := createTestUser(t, db, "admin@example.com", models.RoleAdmin)
	token := authToken(t, s, admin)

	pending := createShop(t, db, "Sketchy Shop", models.ShopStatusPending, models.TierUnverified)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/shops/%d/reject", pending.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var shop models.Shop
	decodeBody(t, resp, &shop)
	assert.Equal(t, models.ShopStatusRejected, shop.Status)

	// The stored row reflects the rejection.
	var stored models.Shop
	require.NoError(t, db.First(&stored, pending.ID).Error)
	assert.Equal(t, models.ShopStatusRejected, stored.Status)
}

func TestSuspendShopHidesListings(t *testing.T) {
	s, app, db := newTestServer(t)
	admin := createTestUser(t, db, "admin@example.com", models.RoleAdmin)
	token := authToken(t, s, admin)

	shop := createShop(t, db, "Active Shop", models.ShopStatusActive, models.TierVerified)
	m := models.Motorcycle{
		Name: "Honda Click 150i", Brand: "Honda", PricePerDay: 800,
		ShopID: shop.ID, ShopName: shop.Name, Available: true,
	}
	require.NoError(t, db.Create(&m).Error)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/shops/%d/suspend", shop.ID), token, nil)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Motorcycle
	require.NoError(t, db.First(&stored, m.ID).Error)
	assert.False(t, stored.Available)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/shops/%d/reinstate", shop.ID), token, nil)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&stored, m.ID).Error)
	assert.True(t, stored.Available)
}

func TestGetModerationQueue(t *testing.T) {
	s, app, db := newTestServer(t)
	admin := createTestUser(t, db, "admin@example.com", models.RoleAdmin)
	token := authToken(t, s, admin)

	createShop(t, db, "Pending One", models.ShopStatusPending, models.TierUnverified)
	createShop(t, db, "Pending Two", models.ShopStatusPending, models.TierUnverified)
	createShop(t, db, "Active One", models.ShopStatusActive, models.TierVerified)

	resp := doJSON(t, app, http.MethodGet, "/api/admin/shops", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var queue map[string][]models.Shop
	decodeBody(t, resp, &queue)
	assert.Len(t, queue["pending"], 2)
	assert.Len(t, queue["active"], 1)
	assert.Empty(t, queue["rejected"])
}

func TestDashboardDispatchesOnRole(t *testing.T) {
	s, app, db := newTestServer(t)

	customer := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	owner := createTestUser(t, db, "owner@example.com", models.RoleShopOwner)
	admin := createTestUser(t, db, "admin@example.com", models.RoleAdmin)

	shop := createShop(t, db, "Owned Shop", models.ShopStatusActive, models.TierVerified)
	shop.OwnerID = &owner.ID
	require.NoError(t, db.Save(shop).Error)

	tests := []struct {
		name         string
		user         *models.User
		expectedRole models.Role
	}{
		{name: "Customer", user: customer, expectedRole: models.RoleCustomer},
		{name: "Shop owner", user: owner, expectedRole: models.RoleShopOwner},
		{name: "Admin", user: admin, expectedRole: models.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodGet, "/api/dashboard", authToken(t, s, tt.user), nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]interface{}
			decodeBody(t, resp, &body)
			assert.Equal(t, string(tt.expectedRole), body["role"])
		})
	}
}

func TestOwnerRoutesForbiddenForCustomer(t *testing.T) {
	s, app, db := newTestServer(t)
	customer := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, customer)

	resp := doJSON(t, app, http.MethodPost, "/api/owner/shops", token, map[string]string{
		"name":     "My Shop",
		"location": "Lazi",
	})
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateShopEntersModerationQueue(t *testing.T) {
	s, app, db := newTestServer(t)
	owner := createTestUser(t, db, "owner@example.com", models.RoleShopOwner)
	token := authToken(t, s, owner)

	resp := doJSON(t, app, http.MethodPost, "/api/owner/shops", token, map[string]interface{}{
		"name":            "Lazi Coast Rentals",
		"location":        "Lazi",
		"payment_methods": []string{"cash", "gcash"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var shop models.Shop
	decodeBody(t, resp, &shop)
	assert.Equal(t, models.ShopStatusPending, shop.Status)
	assert.Equal(t, models.TierUnverified, shop.Tier)
	require.NotNil(t, shop.OwnerID)
	assert.Equal(t, owner.ID, *shop.OwnerID)
}
