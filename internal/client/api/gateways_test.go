package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/booking"
)

func TestAuthLogin_DecodesTokensAndIdentity(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "pw", body["password"])

		_, _ = w.Write([]byte(`{
			"access": "acc-1", "refresh": "ref-1",
			"user": {"id": 1, "username": "alice", "email": "a@example.org", "is_admin": false}
		}`))
	})

	creds, err := c.Auth().Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", creds.Access)
	assert.Equal(t, "ref-1", creds.Refresh)
	assert.Equal(t, "alice", creds.User.Username)
	assert.False(t, creds.User.IsAdmin)
}

func TestAuthLogout_PostsRefreshToken(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ref-1", body["refresh"])
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.Auth().Logout(context.Background(), "ref-1"))
}

func TestBookingsCreate_SendsWireFieldNames(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(3), body["service"])
		assert.Equal(t, "screen flickers", body["problem_description"])
		assert.Equal(t, "2026-04-01", body["preferred_date"])
		assert.Equal(t, "mobile_money", body["payment_method"])

		_, _ = w.Write([]byte(`{"id": 11, "service": 3, "status": "pending", "service_price": "50000"}`))
	})

	created, err := c.Bookings().Create(context.Background(), &booking.CreateRequest{
		ServiceID:          3,
		ProblemDescription: "screen flickers",
		PreferredDate:      "2026-04-01",
		Address:            "addr",
		Phone:              "555",
		PaymentMethod:      booking.PaymentMobileMoney,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, "pending", created.Status)
}

func TestBookingsUpdateStatus_PatchesStatus(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/bookings/7/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "confirmed", body["status"])

		_, _ = w.Write([]byte(`{"id": 7, "status": "confirmed"}`))
	})

	updated, err := c.Bookings().UpdateStatus(context.Background(), 7, booking.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)
}

func TestBookingsList_DecodesDecimalPrices(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "status": "completed", "service_price": "25000.50"},
			{"id": 2, "status": "pending", "service_price": "10000"}
		]`))
	})

	bookings, err := c.Bookings().List(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "25000.5", bookings[0].ServicePrice.String())
}

func TestServicesUpdate_PutsToServicePath(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/services/9/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 9, "name": "Virus removal", "price": "30000"}`))
	})

	svc, err := c.Services().Update(context.Background(), 9, &ServiceInput{Name: "Virus removal"})
	require.NoError(t, err)
	assert.Equal(t, "Virus removal", svc.Name)
}
