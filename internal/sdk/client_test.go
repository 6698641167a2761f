package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/models"
)

func testCreds() models.Credentials {
	return models.Credentials{
		PersonalID: "A123456789",
		Password:   "pw",
		CertPath:   "/tmp/cert.pfx",
	}
}

func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL}, logger.Nop())
	return client, srv
}

func TestLogin_StoresTokenAndReturnsAccounts(t *testing.T) {
	// Arrange
	var gotRequestID string
	var gotBody models.Credentials
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth/login", r.URL.Path)
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"is_success": true,
			"data": map[string]any{
				"token": "tok-1",
				"accounts": []map[string]any{
					{"account": "26", "branch_no": "6460", "name": "Main", "account_type": "stock"},
				},
			},
		})
	}))

	// Act
	accounts, err := client.Login(context.Background(), testCreds())

	// Assert
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "26", accounts[0].AccountID)
	assert.Equal(t, "A123456789", gotBody.PersonalID)
	assert.NotEmpty(t, gotRequestID, "every call carries a request id")
}

func TestLogin_RejectionCarriesServerMessageVerbatim(t *testing.T) {
	// Arrange
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"is_success": false,
			"message":    "憑證已過期",
		})
	}))

	// Act
	_, err := client.Login(context.Background(), testCreds())

	// Assert
	var sdkErr *Error
	require.ErrorAs(t, err, &sdkErr)
	assert.Equal(t, "憑證已過期", sdkErr.Message)
}

func TestCall_HTTPErrorMapped(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance window", http.StatusServiceUnavailable)
	}))

	_, err := client.Login(context.Background(), testCreds())

	var sdkErr *Error
	require.ErrorAs(t, err, &sdkErr)
	assert.Contains(t, sdkErr.Message, "http 503")
	assert.Contains(t, sdkErr.Message, "maintenance window")
}

func TestAuthenticatedCallsCarryBearerToken(t *testing.T) {
	// Arrange
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"is_success": true,
				"data":       map[string]any{"token": "tok-9", "accounts": []any{}},
			})
		default:
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"is_success": true,
				"data":       []any{},
			})
		}
	}))
	_, err := client.Login(context.Background(), testCreds())
	require.NoError(t, err)

	// Act
	_, err = client.Stock().GetOrderResults(context.Background(), Account{AccountID: "26"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-9", gotAuth)
}

func TestStockPlaceOrder_RoundTrip(t *testing.T) {
	// Arrange
	var gotOrder Order
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/auth/login" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"is_success": true,
				"data":       map[string]any{"token": "tok", "accounts": []any{}},
			})
			return
		}

		require.Equal(t, "/v1/accounts/26/stock/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotOrder))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"is_success": true,
			"data":       map[string]any{"order_no": "A0001", "symbol": gotOrder.Symbol, "status": "10"},
		})
	}))
	_, err := client.Login(context.Background(), testCreds())
	require.NoError(t, err)

	order := Order{
		BuySell:     Buy,
		Symbol:      "2330",
		Price:       "580",
		Quantity:    1000,
		MarketType:  MarketCommon,
		PriceType:   PriceLimit,
		TimeInForce: ROD,
		OrderType:   OrderStock,
	}

	// Act
	result, err := client.Stock().PlaceOrder(context.Background(), Account{AccountID: "26"}, order)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "A0001", result.OrderNo)
	assert.Equal(t, order, gotOrder)
}

func TestParseValidators(t *testing.T) {
	pt, err := ParsePriceType("limit-up")
	require.NoError(t, err)
	assert.Equal(t, PriceLimitUp, pt)

	_, err = ParsePriceType("banana")
	assert.Error(t, err)

	ot, err := ParseOrderType("day-trade")
	require.NoError(t, err)
	assert.Equal(t, OrderDayTrade, ot)

	mt, err := ParseFutOptMarketType("future-night")
	require.NoError(t, err)
	assert.Equal(t, MarketFutureNight, mt)
}
