package server

import (
	"net/http"
	"testing"

	"motoisle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func favoriteState(t *testing.T, resp *http.Response) bool {
	t.Helper()
	var body struct {
		Favorite bool `json:"favorite"`
	}
	decodeBody(t, resp, &body)
	return body.Favorite
}

func TestFavoriteAddRemove(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	resp := doJSON(t, app, http.MethodGet, "/api/favorites/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, favoriteState(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/api/favorites/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, favoriteState(t, resp))

	resp = doJSON(t, app, http.MethodGet, "/api/favorites/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, favoriteState(t, resp))

	resp = doJSON(t, app, http.MethodDelete, "/api/favorites/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, favoriteState(t, resp))

	resp = doJSON(t, app, http.MethodGet, "/api/favorites/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, favoriteState(t, resp))
}

func TestFavoriteDuplicateSaveIsNoop(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/favorites/1", token, nil)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFavoriteToggleIsSelfInverse(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	resp := doJSON(t, app, http.MethodPost, "/api/favorites/1/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, favoriteState(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/api/favorites/1/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, favoriteState(t, resp))

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestFavoriteUnknownMotorcycle(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	resp := doJSON(t, app, http.MethodPost, "/api/favorites/999", token, nil)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListFavoritesKeepsSaveOrder(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	for _, path := range []string{"/api/favorites/3", "/api/favorites/1"} {
		resp := doJSON(t, app, http.MethodPost, path, token, nil)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Honda TMX 155", "Honda Click 150i"}, listNames(t, resp))
}

func TestFavoritesArePerUser(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	alice := createTestUser(t, db, "alice@example.com", models.RoleCustomer)
	bob := createTestUser(t, db, "bob@example.com", models.RoleCustomer)

	resp := doJSON(t, app, http.MethodPost, "/api/favorites/1", authToken(t, s, alice), nil)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/favorites", authToken(t, s, bob), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listNames(t, resp))
}
