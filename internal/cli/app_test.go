package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fubon-cli/internal/config"
	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/internal/sdk"
	"github.com/MKhiriev/go-fubon-cli/internal/session"
	"github.com/MKhiriev/go-fubon-cli/models"
)

// fakeStockService records placed orders and serves canned order results.
type fakeStockService struct {
	sdk.StockService

	orders    []sdk.OrderResult
	placed    []sdk.Order
	cancels   []sdk.OrderResult
	priceMods []sdk.PriceModification
}

func (f *fakeStockService) PlaceOrder(_ context.Context, _ sdk.Account, order sdk.Order) (*sdk.OrderResult, error) {
	f.placed = append(f.placed, order)
	return &sdk.OrderResult{OrderNo: "A0001", Symbol: order.Symbol, Status: "10"}, nil
}

func (f *fakeStockService) GetOrderResults(context.Context, sdk.Account) ([]sdk.OrderResult, error) {
	return f.orders, nil
}

func (f *fakeStockService) CancelOrder(_ context.Context, _ sdk.Account, target sdk.OrderResult) (*sdk.OrderResult, error) {
	f.cancels = append(f.cancels, target)
	result := target
	result.Status = "30"
	return &result, nil
}

func (f *fakeStockService) OrderDetail(_ context.Context, _ sdk.Account, orderNo string) (any, error) {
	return map[string]any{"order_no": orderNo, "status": "90"}, nil
}

func (f *fakeStockService) BatchModifyPrice(_ context.Context, _ sdk.Account, mods []sdk.PriceModification) (any, error) {
	f.priceMods = append(f.priceMods, mods...)
	return map[string]any{"modified": len(mods)}, nil
}

// fakeConditionService records the last history query it served.
type fakeConditionService struct {
	sdk.ConditionService

	historyFrom   string
	historyTo     string
	historyFutOpt bool
}

func (f *fakeConditionService) History(_ context.Context, _ sdk.Account, fromDate, toDate string, futopt bool) (any, error) {
	f.historyFrom, f.historyTo, f.historyFutOpt = fromDate, toDate, futopt
	return []any{}, nil
}

// fakeRealtimeService serves its canned events and then closes the channel,
// the shape of a venue dropping the stream.
type fakeRealtimeService struct {
	sdk.RealtimeService

	events []sdk.Event
}

func (f *fakeRealtimeService) Subscribe(context.Context, sdk.SubscribeRequest) (<-chan sdk.Event, error) {
	ch := make(chan sdk.Event, len(f.events))
	for _, ev := range f.events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

// fakeSDKClient accepts any credentials unless rejectWith is set.
type fakeSDKClient struct {
	sdk.Client

	accounts   []sdk.Account
	rejectWith error
	stock      *fakeStockService
	condition  *fakeConditionService
	realtime   *fakeRealtimeService
}

func (f *fakeSDKClient) Login(_ context.Context, _ models.Credentials) ([]sdk.Account, error) {
	if f.rejectWith != nil {
		return nil, f.rejectWith
	}
	return f.accounts, nil
}

func (f *fakeSDKClient) Stock() sdk.StockService         { return f.stock }
func (f *fakeSDKClient) Condition() sdk.ConditionService { return f.condition }
func (f *fakeSDKClient) Realtime() sdk.RealtimeService   { return f.realtime }
func (f *fakeSDKClient) Close() error                    { return nil }

func newTestApp(t *testing.T, client *fakeSDKClient) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	store, err := session.NewStore(filepath.Join(dir, session.FileName), logger.Nop())
	require.NoError(t, err)
	aiStore, err := config.NewAssistantStore(filepath.Join(dir, config.AssistantFileName), logger.Nop())
	require.NoError(t, err)

	var envelopes, human bytes.Buffer
	factory := func() sdk.Client { return client }
	sessions := core.NewSessionManager(store, factory, logger.Nop())

	app := New(sessions, store, aiStore, core.NewEmitter(&envelopes), &human, logger.Nop())
	return app, &envelopes, &human
}

func decodeEnvelope(t *testing.T, raw []byte) map[string]any {
	t.Helper()

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func defaultFake() *fakeSDKClient {
	return &fakeSDKClient{
		accounts:  []sdk.Account{{AccountID: "26", Branch: "6460", Name: "Main", AccountType: "stock"}},
		stock:     &fakeStockService{},
		condition: &fakeConditionService{},
		realtime:  &fakeRealtimeService{},
	}
}

func TestExecute_NotLoggedIn(t *testing.T) {
	// Arrange
	app, envelopes, _ := newTestApp(t, defaultFake())

	// Act
	code := app.Execute(context.Background(), []string{"stock", "orders"})

	// Assert
	assert.Equal(t, 1, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Equal(t, false, doc["success"])
	assert.Contains(t, doc["error"], "not logged in")
}

func TestExecute_LoginThenStatus(t *testing.T) {
	// Arrange
	app, envelopes, _ := newTestApp(t, defaultFake())

	// Act
	code := app.Execute(context.Background(), []string{
		"login", "--id", "A123456789", "--password", "pw", "--cert-path", "/tmp/c.pfx",
	})

	// Assert
	require.Equal(t, 0, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Equal(t, true, doc["success"])
	data := doc["data"].(map[string]any)
	assert.Len(t, data["accounts"], 1)

	// Act: status reads the stored session without an SDK round trip.
	envelopes.Reset()
	code = app.Execute(context.Background(), []string{"login", "status"})

	// Assert
	require.Equal(t, 0, code)
	doc = decodeEnvelope(t, envelopes.Bytes())
	data = doc["data"].(map[string]any)
	assert.Equal(t, true, data["logged_in"])
	assert.Equal(t, "A12***", data["personal_id"])
}

func TestExecute_LoginMissingFlags(t *testing.T) {
	app, envelopes, _ := newTestApp(t, defaultFake())

	code := app.Execute(context.Background(), []string{"login", "--id", "A123456789"})

	assert.Equal(t, 1, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Contains(t, doc["error"], "Missing required options")
}

func TestExecute_LoginRejected(t *testing.T) {
	// Arrange
	client := defaultFake()
	client.rejectWith = &sdk.Error{Message: "invalid certificate"}
	app, envelopes, _ := newTestApp(t, client)

	// Act
	code := app.Execute(context.Background(), []string{
		"login", "--id", "A123456789", "--password", "pw", "--cert-path", "/tmp/c.pfx",
	})

	// Assert: SDK message verbatim inside the login-failed error.
	assert.Equal(t, 1, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Contains(t, doc["error"], "invalid certificate")
}

func TestExecute_LogoutThenStatus(t *testing.T) {
	// Arrange
	app, envelopes, _ := newTestApp(t, defaultFake())
	require.Equal(t, 0, app.Execute(context.Background(), []string{
		"login", "--id", "A123456789", "--password", "pw", "--cert-path", "/tmp/c.pfx",
	}))
	envelopes.Reset()

	// Act
	require.Equal(t, 0, app.Execute(context.Background(), []string{"login", "logout"}))
	envelopes.Reset()
	code := app.Execute(context.Background(), []string{"login", "status"})

	// Assert
	require.Equal(t, 0, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	data := doc["data"].(map[string]any)
	assert.Equal(t, false, data["logged_in"])
}

func TestExecute_BareInvocationPrintsWelcome(t *testing.T) {
	app, envelopes, human := newTestApp(t, defaultFake())

	code := app.Execute(context.Background(), nil)

	assert.Equal(t, 0, code)
	assert.Zero(t, envelopes.Len(), "welcome screen is not an envelope")
	assert.Contains(t, human.String(), "fubon")
}

func loginFirst(t *testing.T, app *App, envelopes *bytes.Buffer) {
	t.Helper()
	require.Equal(t, 0, app.Execute(context.Background(), []string{
		"login", "--id", "A123456789", "--password", "pw", "--cert-path", "/tmp/c.pfx",
	}))
	envelopes.Reset()
}

func TestExecute_BuyLimitWithoutPrice(t *testing.T) {
	// Arrange
	client := defaultFake()
	app, envelopes, _ := newTestApp(t, client)
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{"stock", "buy", "2330", "1000"})

	// Assert: fails in validation, nothing reaches the SDK.
	assert.Equal(t, 1, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Contains(t, doc["error"], "--price is required")
	assert.Empty(t, client.stock.placed)
}

func TestExecute_BuyPlacesOrder(t *testing.T) {
	// Arrange
	client := defaultFake()
	app, envelopes, _ := newTestApp(t, client)
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{
		"stock", "buy", "2330", "1000", "--price", "580", "--time-in-force", "IOC",
	})

	// Assert
	require.Equal(t, 0, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Equal(t, true, doc["success"])

	require.Len(t, client.stock.placed, 1)
	placed := client.stock.placed[0]
	assert.Equal(t, sdk.Buy, placed.BuySell)
	assert.Equal(t, "2330", placed.Symbol)
	assert.Equal(t, sdk.IOC, placed.TimeInForce)
	assert.Equal(t, sdk.PriceLimit, placed.PriceType)
}

func TestExecute_CancelUnknownOrder(t *testing.T) {
	// Arrange
	client := defaultFake()
	client.stock.orders = []sdk.OrderResult{{OrderNo: "A0001", Symbol: "2330"}}
	app, envelopes, _ := newTestApp(t, client)
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{"stock", "cancel", "Z9999"})

	// Assert
	assert.Equal(t, 1, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Contains(t, doc["error"], "Z9999 not found")
	assert.Empty(t, client.stock.cancels)
}

func TestExecute_CancelKnownOrder(t *testing.T) {
	// Arrange
	client := defaultFake()
	client.stock.orders = []sdk.OrderResult{{OrderNo: "A0001", Symbol: "2330"}}
	app, envelopes, _ := newTestApp(t, client)
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{"stock", "cancel", "A0001"})

	// Assert
	require.Equal(t, 0, code)
	require.Len(t, client.stock.cancels, 1)
	assert.Equal(t, "A0001", client.stock.cancels[0].OrderNo)
}

func TestExecute_AccountIndexOutOfRange(t *testing.T) {
	// Arrange
	app, envelopes, _ := newTestApp(t, defaultFake())
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{"stock", "orders", "--account-index", "5"})

	// Assert
	assert.Equal(t, 1, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Contains(t, doc["error"], "out of range")
}

func TestExecute_ConfigSetGet(t *testing.T) {
	// Arrange
	app, envelopes, _ := newTestApp(t, defaultFake())

	// Act
	code := app.Execute(context.Background(), []string{"config", "set", "openai-key", "sk-verysecretkey"})

	// Assert: the stored value never echoes in full.
	require.Equal(t, 0, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	data := doc["data"].(map[string]any)
	assert.Equal(t, "sk-verys...", data["value"])

	envelopes.Reset()
	code = app.Execute(context.Background(), []string{"config", "get", "ai-model"})
	require.Equal(t, 0, code)
	doc = decodeEnvelope(t, envelopes.Bytes())
	assert.Equal(t, true, doc["success"])
}

func TestExecute_OrderDetail(t *testing.T) {
	// Arrange
	app, envelopes, _ := newTestApp(t, defaultFake())
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{"stock", "order-detail", "A0001"})

	// Assert
	require.Equal(t, 0, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Equal(t, true, doc["success"])
	data := doc["data"].(map[string]any)
	assert.Equal(t, "A0001", data["order_no"])
}

func TestExecute_BatchModifyPriceResolvesTargets(t *testing.T) {
	// Arrange
	client := defaultFake()
	client.stock.orders = []sdk.OrderResult{
		{OrderNo: "A0001", Symbol: "2330"},
		{OrderNo: "A0002", Symbol: "2317"},
	}
	app, envelopes, _ := newTestApp(t, client)
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{
		"stock", "batch-modify-price", `[{"order_no":"A0002","price":"575"}]`,
	})

	// Assert: the update is sent with the full resolved order object.
	require.Equal(t, 0, code)
	require.Len(t, client.stock.priceMods, 1)
	assert.Equal(t, "A0002", client.stock.priceMods[0].Target.OrderNo)
	assert.Equal(t, "2317", client.stock.priceMods[0].Target.Symbol)
	assert.Equal(t, "575", client.stock.priceMods[0].Price)
}

func TestExecute_BatchModifyPriceUnknownOrder(t *testing.T) {
	// Arrange
	client := defaultFake()
	client.stock.orders = []sdk.OrderResult{{OrderNo: "A0001", Symbol: "2330"}}
	app, envelopes, _ := newTestApp(t, client)
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{
		"stock", "batch-modify-price", `[{"order_no":"Z9999","price":"575"}]`,
	})

	// Assert: one unknown number fails the whole batch before any mutation.
	assert.Equal(t, 1, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Contains(t, doc["error"], "Z9999 not found")
	assert.Empty(t, client.stock.priceMods)
}

func TestExecute_ConditionHistory(t *testing.T) {
	// Arrange
	client := defaultFake()
	app, envelopes, _ := newTestApp(t, client)
	loginFirst(t, app, envelopes)

	// Act: missing dates fail in validation.
	code := app.Execute(context.Background(), []string{"condition", "history"})

	// Assert
	assert.Equal(t, 1, code)
	doc := decodeEnvelope(t, envelopes.Bytes())
	assert.Contains(t, doc["error"], "--from and --to are required")

	// Act
	envelopes.Reset()
	code = app.Execute(context.Background(), []string{
		"condition", "history", "--from", "2024-01-01", "--to", "2024-01-31", "--futopt",
	})

	// Assert
	require.Equal(t, 0, code)
	assert.Equal(t, "2024-01-01", client.condition.historyFrom)
	assert.Equal(t, "2024-01-31", client.condition.historyTo)
	assert.True(t, client.condition.historyFutOpt)
}

func TestExecute_SubscribeTransportCloseFails(t *testing.T) {
	// Arrange
	client := defaultFake()
	client.realtime.events = []sdk.Event{{Kind: "data", Data: map[string]any{"symbol": "2330"}}}
	app, envelopes, _ := newTestApp(t, client)
	loginFirst(t, app, envelopes)

	// Act
	code := app.Execute(context.Background(), []string{"realtime", "subscribe", "2330"})

	// Assert: the event still streams, then the uninvited close is an error.
	assert.Equal(t, 1, code)
	first, rest, found := strings.Cut(envelopes.String(), "\n")
	require.True(t, found)
	event := decodeEnvelope(t, []byte(first))
	assert.Equal(t, "data", event["event"])
	assert.Contains(t, rest, "realtime stream closed")
}

func TestMaskPersonalID(t *testing.T) {
	assert.Equal(t, "A12***", maskPersonalID("A123456789"))
	assert.Equal(t, "A1", maskPersonalID("A1"))
}
