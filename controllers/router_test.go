package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MavMaver/food-delivery/configs"
	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/routes"
)

var httpDBSeq atomic.Int64

// apiError mirrors the error envelope the API writes.
type apiError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:http_test_%d?mode=memory&cache=shared", httpDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.UserVersion{},
		&entity.Restaurant{}, &entity.MenuItem{}, &entity.MenuVariation{},
		&entity.Cart{}, &entity.CartLine{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Payment{},
	))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apiError {
	t.Helper()
	var e apiError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCart_RequiresUserID(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	e := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", e.Code)
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, "Bad Request", e.Error)
	assert.Equal(t, "/cart", e.Path)
	assert.False(t, e.Timestamp.IsZero())
	assert.NotEmpty(t, e.Message)
}

func TestGetCart_NoCartYieldsSyntheticEmpty(t *testing.T) {
	r, db := newRouter(t)
	u := &entity.User{Name: "A", Email: "a@example.com", Role: "customer", Active: true}
	require.NoError(t, db.Create(u).Error)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/cart?userId=%d", u.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID   uint            `json:"userId"`
		Lines    []any           `json:"lines"`
		Subtotal json.RawMessage `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, u.ID, body.UserID)
	assert.Empty(t, body.Lines)

	// no cart row was created by a read
	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAddCartItem_ZeroQuantityIsBadQuantity(t *testing.T) {
	r, _ := newRouter(t)

	// zero and negative quantities must yield the same stable code
	for _, qty := range []int{0, -1} {
		w := do(t, r, http.MethodPost, "/cart/items",
			gin.H{"userId": 1, "variationId": 1, "quantity": qty})
		require.Equal(t, http.StatusBadRequest, w.Code)

		e := decodeError(t, w)
		assert.Equal(t, "BAD_QUANTITY", e.Code)
	}
}

func TestCreateOrder_UnknownUserIs400(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodPost, "/orders", gin.H{"userId": 9999})
	require.Equal(t, http.StatusBadRequest, w.Code)

	e := decodeError(t, w)
	assert.Equal(t, "USER_NOT_FOUND", e.Code)
	assert.Equal(t, "/orders", e.Path)
}

func TestChangeOrderStatus_IllegalTransitionIs409(t *testing.T) {
	r, db := newRouter(t)
	u := &entity.User{Name: "A", Email: "a@example.com", Role: "customer", Active: true}
	require.NoError(t, db.Create(u).Error)
	o := &entity.Order{UserID: u.ID, Status: entity.OrderNew, EtaMinutes: 20}
	require.NoError(t, db.Create(o).Error)

	w := do(t, r, http.MethodPatch, fmt.Sprintf("/orders/%d/status", o.ID),
		gin.H{"status": "DELIVERED"})
	require.Equal(t, http.StatusConflict, w.Code)

	e := decodeError(t, w)
	assert.Equal(t, "BAD_TRANSITION", e.Code)
	assert.Equal(t, "Conflict", e.Error)
}

func TestCatalogMutation_RequiresAuth(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodPost, "/restaurants", gin.H{"name": "X"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	e := decodeError(t, w)
	assert.Equal(t, "UNAUTHORIZED", e.Code)
}

func TestPaymentCreate_BadAmountIs400(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodPost, "/payments",
		gin.H{"orderId": 1, "amount": "-5.00"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	e := decodeError(t, w)
	assert.Equal(t, "BAD_AMOUNT", e.Code)
}
