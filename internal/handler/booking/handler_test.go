package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/middleware"
	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository/memory"
	"github.com/bellezapura/salon-api/internal/service/auth"
	"github.com/bellezapura/salon-api/internal/service/booking"
	"github.com/bellezapura/salon-api/internal/service/ledger"
	pkgauth "github.com/bellezapura/salon-api/pkg/auth"
	"github.com/bellezapura/salon-api/pkg/logger"
)

// setupAuthedRouter wires the handler behind real auth middleware and
// returns a token for the seeded client Carla.
func setupAuthedRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler.RegisterValidators()

	store := memory.NewSeededStore()
	bookingSvc := booking.NewService(
		memory.NewBookingRepository(store),
		memory.NewUserRepository(store),
		memory.NewServiceRepository(store),
		memory.NewProfessionalRepository(store),
		memory.NewSaleRepository(store),
		ledger.NewService(),
		nil,
		booking.Config{},
	)
	authSvc := auth.NewService(memory.NewUserRepository(store), pkgauth.NewJWTService("test-secret", time.Hour), time.Hour)

	h := NewHandler(bookingSvc, logger.NewLogger(nil))
	engine := gin.New()
	api := engine.Group("", middleware.Auth(authSvc))
	h.RegisterRoutes(api)
	h.RegisterAdminRoutes(api)

	token, err := authSvc.Login(context.Background(), "carla.mendes@example.com", memory.DemoPassword)
	require.NoError(t, err)
	return engine, token.AccessToken
}

func slotAt(daysAhead, hour int) time.Time {
	d := time.Now().AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndToEnd(t *testing.T) {
	engine, token := setupAuthedRouter(t)

	date := slotAt(2, 10).Format(time.RFC3339)
	w := doJSON(t, engine, http.MethodPost, "/bookings", token, gin.H{
		"service_id":      memory.ServiceFacialID.String(),
		"professional_id": memory.ProfessionalJulianaID.String(),
		"date":            date,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string        `json:"status"`
		Data   model.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, model.BookingStatusConfirmed, resp.Data.Status)

	// cancel once: ok
	w = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", resp.Data.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// cancel twice: conflict
	w = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", resp.Data.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingRequiresAuth(t *testing.T) {
	engine, _ := setupAuthedRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/bookings", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPurchasePackageGrantsCredits(t *testing.T) {
	engine, token := setupAuthedRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/purchases", token, gin.H{
		"service_id": memory.ServiceDrainageID.String(),
		"quantity":   1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Kind string     `json:"kind"`
			User model.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "package", resp.Data.Kind)
	assert.Equal(t, 10, resp.Data.User.Credits[memory.ServiceDrainageID])
}

func TestPurchaseSingleOnlyClassifies(t *testing.T) {
	engine, token := setupAuthedRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/purchases", token, gin.H{
		"service_id": memory.ServiceFacialID.String(),
		"quantity":   1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Kind string `json:"kind"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "single", resp.Data.Kind)
}

func TestReviewValidationSurfaces422(t *testing.T) {
	engine, token := setupAuthedRouter(t)

	date := slotAt(2, 10).Format(time.RFC3339)
	w := doJSON(t, engine, http.MethodPost, "/bookings", token, gin.H{
		"service_id":      memory.ServiceFacialID.String(),
		"professional_id": memory.ProfessionalJulianaID.String(),
		"date":            date,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data model.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/bookings/%s/complete", created.Data.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/bookings/%s/review", created.Data.ID), token, gin.H{
		"rating":  4,
		"comment": "curto",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
