package sdk

import (
	"context"

	"github.com/MKhiriev/go-fubon-cli/models"
)

// Client is the brokerage SDK capability surface the CLI consumes.
// Implementations must be safe to discard after one invocation; nothing is
// cached across processes.
type Client interface {
	// Login authenticates with the brokerage and returns the trading
	// accounts under the identity, in server order. A rejection comes back
	// as *Error with the server's message verbatim.
	Login(ctx context.Context, creds models.Credentials) ([]Account, error)

	// Logout invalidates the remote session, if any.
	Logout(ctx context.Context) error

	Stock() StockService
	Accounting() AccountingService
	FutOpt() FutOptService
	Condition() ConditionService
	MarketData() MarketDataService
	Realtime() RealtimeService

	// Close releases transport resources.
	Close() error
}

// Factory constructs a fresh, not-yet-logged-in Client. The session manager
// calls it once per invocation.
type Factory func() Client

// StockService covers stock order placement and management.
type StockService interface {
	PlaceOrder(ctx context.Context, acc Account, order Order) (*OrderResult, error)
	GetOrderResults(ctx context.Context, acc Account) ([]OrderResult, error)
	CancelOrder(ctx context.Context, acc Account, target OrderResult) (*OrderResult, error)
	ModifyPrice(ctx context.Context, acc Account, target OrderResult, newPrice string) (*OrderResult, error)
	ModifyQuantity(ctx context.Context, acc Account, target OrderResult, newQuantity int) (*OrderResult, error)
	OrderHistory(ctx context.Context, acc Account, fromDate, toDate string) ([]OrderResult, error)
	FilledHistory(ctx context.Context, acc Account, fromDate, toDate string) ([]OrderResult, error)
	BatchPlaceOrder(ctx context.Context, acc Account, orders []Order) ([]OrderResult, error)
	BatchCancelOrder(ctx context.Context, acc Account, targets []OrderResult) ([]OrderResult, error)
	BatchModifyPrice(ctx context.Context, acc Account, mods []PriceModification) (any, error)
	BatchModifyQuantity(ctx context.Context, acc Account, mods []QuantityModification) (any, error)
	OrderDetail(ctx context.Context, acc Account, orderNo string) (any, error)
	CreateBatchOrder(ctx context.Context, acc Account, orders []Order) (any, error)
	GetBatchOrder(ctx context.Context, acc Account, batchNo string) (any, error)
	GetBatchOrderList(ctx context.Context, acc Account) (any, error)
	QuerySymbolQuote(ctx context.Context, acc Account, symbol string, marketType MarketType) (any, error)
	QuerySymbolSnapshot(ctx context.Context, acc Account, marketType MarketType, stockTypes []string) (any, error)
	MarketPriceChange(ctx context.Context, acc Account, market string) (any, error)
	DayTradeQuota(ctx context.Context, acc Account) (any, error)
}

// AccountingService covers account bookkeeping queries.
type AccountingService interface {
	Inventories(ctx context.Context, acc Account) (any, error)
	UnrealizedGainsLosses(ctx context.Context, acc Account) (any, error)
	QuerySettlement(ctx context.Context, acc Account, dateRange string) (any, error)
	MarginQuota(ctx context.Context, acc Account, symbol string) (any, error)
	BankRemain(ctx context.Context, acc Account) (any, error)
	Maintenance(ctx context.Context, acc Account) (any, error)
	RealizedProfitLoss(ctx context.Context, acc Account) (any, error)
	RealizedProfitLossSummary(ctx context.Context, acc Account) (any, error)
}

// FutOptService covers futures and options trading.
type FutOptService interface {
	PlaceOrder(ctx context.Context, acc Account, order FutOptOrder) (*OrderResult, error)
	GetOrderResults(ctx context.Context, acc Account) ([]OrderResult, error)
	FilledResults(ctx context.Context, acc Account) ([]OrderResult, error)
	CancelOrder(ctx context.Context, acc Account, target OrderResult) (*OrderResult, error)
	ModifyPrice(ctx context.Context, acc Account, target OrderResult, newPrice string) (*OrderResult, error)
	ModifyQuantity(ctx context.Context, acc Account, target OrderResult, newLot int) (*OrderResult, error)
	Inventories(ctx context.Context, acc Account) (any, error)
	Settlements(ctx context.Context, acc Account) (any, error)
}

// ConditionService covers server-held conditional orders. Create takes the
// raw JSON specification unmodified; the brokerage validates it.
type ConditionService interface {
	Create(ctx context.Context, acc Account, spec []byte, futopt bool) (any, error)
	List(ctx context.Context, acc Account, futopt bool) (any, error)
	Get(ctx context.Context, acc Account, guid string, futopt bool) (any, error)
	Cancel(ctx context.Context, acc Account, guid string, futopt bool) (any, error)
	History(ctx context.Context, acc Account, fromDate, toDate string, futopt bool) (any, error)
	TrailOrders(ctx context.Context, acc Account, futopt bool) (any, error)
	TrailHistory(ctx context.Context, acc Account, fromDate, toDate string, futopt bool) (any, error)
	// TimeSliceOrder is stock-side only; the venue keeps no derivatives
	// time-slice book.
	TimeSliceOrder(ctx context.Context, acc Account, batchNo string) (any, error)
	DayTradeConditions(ctx context.Context, acc Account, futopt bool) (any, error)
}

// MarketDataService covers REST market data. Results are returned as the
// decoded JSON the venue produced, without reshaping.
type MarketDataService interface {
	IntradayQuote(ctx context.Context, symbol string, oddLot bool) (any, error)
	IntradayTicker(ctx context.Context, symbol string, oddLot bool) (any, error)
	IntradayCandles(ctx context.Context, symbol, timeframe string, oddLot bool) (any, error)
	IntradayTrades(ctx context.Context, symbol string, limit, offset int) (any, error)
	IntradayVolumes(ctx context.Context, symbol string) (any, error)
	SnapshotQuotes(ctx context.Context, market string) (any, error)
	SnapshotMovers(ctx context.Context, market, direction, change string) (any, error)
	SnapshotActives(ctx context.Context, market, trade string) (any, error)
	HistoricalCandles(ctx context.Context, symbol, timeframe, fromDate, toDate string, adjusted bool) (any, error)
	HistoricalStats(ctx context.Context, symbol string) (any, error)
	Tickers(ctx context.Context, tickerType, exchange string) (any, error)
}

// RealtimeService delivers streaming events over a channel. The channel is
// bounded; it closes when ctx is cancelled or the transport drops. Events
// that cannot be buffered while the consumer lags are dropped and counted
// (at-most-once delivery).
type RealtimeService interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (<-chan Event, error)
	Notifications(ctx context.Context, acc Account) (<-chan Event, error)
}
