package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"device-inventory-backend/internal/model"
)

func setupSubscriptionRouter() *gin.Engine {
	r := gin.New()
	handler := NewHandler(nil, nil, nil)
	r.PUT("/api/subscriptions", handler.PutSubscription)
	r.DELETE("/api/subscriptions", handler.DeleteSubscription)
	r.GET("/api/subscriptions", handler.GetSubscription)
	return r
}

func TestPutSubscription_InvalidRequest(t *testing.T) {
	router := setupSubscriptionRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/subscriptions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request", decode[ErrorResponse](t, w).Message)
}

func TestGetSubscription_RequiresEndpoint(t *testing.T) {
	router := setupSubscriptionRouter()

	w := doJSON(t, router, http.MethodGet, "/api/subscriptions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "endpoint is required", decode[ErrorResponse](t, w).Message)
}

func TestSubscriptions_RoundTrip(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	phone := &model.Device{Name: "Phone", Brand: "Apple", State: model.StateInUse}
	tablet := &model.Device{Name: "Tablet", Brand: "Apple", State: model.StateInUse}
	require.NoError(t, s.Save(ctx, phone))
	require.NoError(t, s.Save(ctx, tablet))

	router := NewRouter(nil, s, nil, testRouterConfig)
	endpoint := "https://push.example.com/abc"

	w := doJSON(t, router, http.MethodPut, "/api/subscriptions", map[string]any{
		"endpoint":           endpoint,
		"p256dh":             "key",
		"auth":               "secret",
		"subscribed_devices": []int64{phone.ID, tablet.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/subscriptions?endpoint="+endpoint, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []int64{phone.ID, tablet.ID}, decode[map[string][]int64](t, w)["subscribed_devices"])

	// A second PUT replaces the followed set.
	w = doJSON(t, router, http.MethodPut, "/api/subscriptions", map[string]any{
		"endpoint":           endpoint,
		"p256dh":             "key2",
		"auth":               "secret2",
		"subscribed_devices": []int64{tablet.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/subscriptions?endpoint="+endpoint, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{tablet.ID}, decode[map[string][]int64](t, w)["subscribed_devices"])

	w = doJSON(t, router, http.MethodDelete, "/api/subscriptions", map[string]string{"endpoint": endpoint})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/subscriptions?endpoint="+endpoint, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVAPIDPublicKey(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		router := NewRouter(nil, nil, nil, testRouterConfig)
		w := doJSON(t, router, http.MethodGet, "/api/vapid_public_key", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("configured", func(t *testing.T) {
		router := NewRouter(nil, nil, &webpush.Options{VAPIDPublicKey: "pub-key"}, testRouterConfig)
		w := doJSON(t, router, http.MethodGet, "/api/vapid_public_key", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"public_key":"pub-key"}`, w.Body.String())
	})
}

func TestHealth(t *testing.T) {
	router := NewRouter(nil, newSQLiteStore(t), nil, testRouterConfig)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
