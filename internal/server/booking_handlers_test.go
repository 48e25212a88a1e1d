package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"motoisle/internal/models"
	"motoisle/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestQuoteBooking(t *testing.T) {
	_, app, db := newTestServer(t)
	seedCatalog(t, db)

	tests := []struct {
		name         string
		path         string
		expectedDays int
		expectedCost int
	}{
		{
			// Three nights at 800/day.
			name:         "Shop pickup",
			path:         "/api/motorcycles/1/quote?start=2030-01-10&end=2030-01-13",
			expectedDays: 3,
			expectedCost: 2400,
		},
		{
			// Delivery adds the 150 fee because bike 1 offers delivery.
			name:         "Delivery pickup",
			path:         "/api/motorcycles/1/quote?start=2030-01-10&end=2030-01-13&pickup=delivery",
			expectedDays: 3,
			expectedCost: 2550,
		},
		{
			// Bike 2 does not deliver, so the fee never applies.
			name:         "Delivery requested but unavailable",
			path:         "/api/motorcycles/2/quote?start=2030-01-10&end=2030-01-11&pickup=delivery",
			expectedDays: 1,
			expectedCost: 1000,
		},
		{
			// Inverted range prices as zero instead of erroring.
			name:         "Inverted range",
			path:         "/api/motorcycles/1/quote?start=2030-01-13&end=2030-01-10",
			expectedDays: 0,
			expectedCost: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodGet, tt.path, "", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var quote service.Quote
			decodeBody(t, resp, &quote)
			assert.Equal(t, tt.expectedDays, quote.Days)
			assert.Equal(t, tt.expectedCost, quote.TotalCost)
		})
	}
}

func TestQuoteBookingBadDates(t *testing.T) {
	_, app, db := newTestServer(t)
	seedCatalog(t, db)

	resp := doJSON(t, app, http.MethodGet, "/api/motorcycles/1/quote?start=yesterday&end=tomorrow", "", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateBooking(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	resp := doJSON(t, app, http.MethodPost, "/api/bookings", token, map[string]interface{}{
		"motorcycle_id":   1,
		"start_date":      futureDate(2),
		"end_date":        futureDate(5),
		"pickup_location": "shop",
		"customer_name":   "Demo Customer",
		"customer_phone":  "+63 917 555 0101",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking models.Booking
	decodeBody(t, resp, &booking)
	assert.Equal(t, 3, booking.TotalDays)
	assert.Equal(t, 2400, booking.TotalCost)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, user.ID, booking.UserID)
	// Confirmation code is derived from the booking id.
	assert.True(t, strings.HasPrefix(booking.ConfirmationCode, "BOOK-"), booking.ConfirmationCode)
	assert.Equal(t, fmt.Sprintf("BOOK-%06d", booking.ID), booking.ConfirmationCode)
}

func TestCreateBookingValidation(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	base := func() map[string]interface{} {
		return map[string]interface{}{
			"motorcycle_id":   1,
			"start_date":      futureDate(2),
			"end_date":        futureDate(5),
			"pickup_location": "shop",
			"customer_name":   "Demo Customer",
			"customer_phone":  "+63 917 555 0101",
		}
	}

	tests := []struct {
		name           string
		mutate         func(map[string]interface{})
		expectedStatus int
	}{
		{
			name:           "Missing name",
			mutate:         func(m map[string]interface{}) { m["customer_name"] = "" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing phone",
			mutate:         func(m map[string]interface{}) { m["customer_phone"] = "" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "End not after start",
			mutate: func(m map[string]interface{}) {
				m["start_date"] = futureDate(5)
				m["end_date"] = futureDate(5)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Start in the past",
			mutate: func(m map[string]interface{}) {
				m["start_date"] = time.Now().AddDate(0, 0, -3).Format("2006-01-02")
				m["end_date"] = futureDate(2)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown pickup location",
			mutate:         func(m map[string]interface{}) { m["pickup_location"] = "teleport" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown motorcycle",
			mutate:         func(m map[string]interface{}) { m["motorcycle_id"] = 999 },
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := base()
			tt.mutate(body)
			resp := doJSON(t, app, http.MethodPost, "/api/bookings", token, body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	body := map[string]interface{}{
		"motorcycle_id":   1,
		"start_date":      futureDate(2),
		"end_date":        futureDate(5),
		"pickup_location": "shop",
		"customer_name":   "Demo Customer",
		"customer_phone":  "+63 917 555 0101",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/bookings", token, body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Intersecting range on the same bike is rejected.
	body["start_date"] = futureDate(4)
	body["end_date"] = futureDate(7)
	resp = doJSON(t, app, http.MethodPost, "/api/bookings", token, body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// A range that only touches the end boundary is fine.
	body["start_date"] = futureDate(5)
	body["end_date"] = futureDate(7)
	resp = doJSON(t, app, http.MethodPost, "/api/bookings", token, body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestGetBookingByCode(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	resp := doJSON(t, app, http.MethodPost, "/api/bookings", token, map[string]interface{}{
		"motorcycle_id":  1,
		"start_date":     futureDate(2),
		"end_date":       futureDate(4),
		"customer_name":  "Demo Customer",
		"customer_phone": "+63 917 555 0101",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Booking
	decodeBody(t, resp, &created)

	resp = doJSON(t, app, http.MethodGet, "/api/bookings/code/"+created.ConfirmationCode, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Booking
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	require.NotNil(t, fetched.Motorcycle)
	assert.Equal(t, "Honda Click 150i", fetched.Motorcycle.Name)

	// Another customer cannot look up someone else's booking.
	other := createTestUser(t, db, "other@example.com", models.RoleCustomer)
	otherToken := authToken(t, s, other)
	resp = doJSON(t, app, http.MethodGet, "/api/bookings/code/"+created.ConfirmationCode, otherToken, nil)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCancelBooking(t *testing.T) {
	s, app, db := newTestServer(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, "demo@example.com", models.RoleCustomer)
	token := authToken(t, s, user)

	resp := doJSON(t, app, http.MethodPost, "/api/bookings", token, map[string]interface{}{
		"motorcycle_id":  1,
		"start_date":     futureDate(2),
		"end_date":       futureDate(4),
		"customer_name":  "Demo Customer",
		"customer_phone": "+63 917 555 0101",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var booking models.Booking
	decodeBody(t, resp, &booking)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/bookings/%d/cancel", booking.ID), token, nil)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)

	// Cancelling twice fails because the booking is no longer confirmed.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/bookings/%d/cancel", booking.ID), token, nil)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
