package sdk

import "fmt"

// Account identifies one trading account under the logged-in identity.
type Account struct {
	AccountID   string `json:"account"`
	Branch      string `json:"branch_no"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
}

// BSAction is the order side.
type BSAction string

const (
	Buy  BSAction = "Buy"
	Sell BSAction = "Sell"
)

// PriceType selects how the order price is interpreted.
type PriceType string

const (
	PriceLimit     PriceType = "Limit"
	PriceMarket    PriceType = "Market"
	PriceLimitUp   PriceType = "LimitUp"
	PriceLimitDown PriceType = "LimitDown"
	PriceReference PriceType = "Reference"
)

// TimeInForce is the order lifetime policy.
type TimeInForce string

const (
	ROD TimeInForce = "ROD"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

// OrderType selects the trading channel (cash, margin, short sale, ...).
type OrderType string

const (
	OrderStock    OrderType = "Stock"
	OrderMargin   OrderType = "Margin"
	OrderShort    OrderType = "Short"
	OrderSBL      OrderType = "SBL"
	OrderDayTrade OrderType = "DayTrade"
)

// MarketType selects the trading session/board.
type MarketType string

const (
	MarketCommon      MarketType = "Common"
	MarketOdd         MarketType = "Odd"
	MarketIntradayOdd MarketType = "IntradayOdd"
	MarketFixing      MarketType = "Fixing"
	MarketEmg         MarketType = "Emg"
	MarketEmgOdd      MarketType = "EmgOdd"
)

var (
	priceTypes = map[string]PriceType{
		"limit":      PriceLimit,
		"market":     PriceMarket,
		"limit-up":   PriceLimitUp,
		"limit-down": PriceLimitDown,
		"reference":  PriceReference,
	}
	timeInForces = map[string]TimeInForce{
		"ROD": ROD,
		"IOC": IOC,
		"FOK": FOK,
	}
	orderTypes = map[string]OrderType{
		"stock":     OrderStock,
		"margin":    OrderMargin,
		"short":     OrderShort,
		"sbl":       OrderSBL,
		"day-trade": OrderDayTrade,
	}
	marketTypes = map[string]MarketType{
		"common":       MarketCommon,
		"odd":          MarketOdd,
		"intraday-odd": MarketIntradayOdd,
		"fixing":       MarketFixing,
		"emg":          MarketEmg,
		"emg-odd":      MarketEmgOdd,
	}
)

// ParsePriceType maps the CLI spelling ("limit-up") to a PriceType.
func ParsePriceType(s string) (PriceType, error) {
	v, ok := priceTypes[s]
	if !ok {
		return "", fmt.Errorf("unknown price type %q", s)
	}
	return v, nil
}

// ParseTimeInForce maps the CLI spelling ("ROD") to a TimeInForce.
func ParseTimeInForce(s string) (TimeInForce, error) {
	v, ok := timeInForces[s]
	if !ok {
		return "", fmt.Errorf("unknown time in force %q", s)
	}
	return v, nil
}

// ParseOrderType maps the CLI spelling ("day-trade") to an OrderType.
func ParseOrderType(s string) (OrderType, error) {
	v, ok := orderTypes[s]
	if !ok {
		return "", fmt.Errorf("unknown order type %q", s)
	}
	return v, nil
}

// ParseMarketType maps the CLI spelling ("intraday-odd") to a MarketType.
func ParseMarketType(s string) (MarketType, error) {
	v, ok := marketTypes[s]
	if !ok {
		return "", fmt.Errorf("unknown market type %q", s)
	}
	return v, nil
}

// Order is a stock order specification.
type Order struct {
	BuySell     BSAction    `json:"buy_sell"`
	Symbol      string      `json:"symbol"`
	Price       string      `json:"price,omitempty"`
	Quantity    int         `json:"quantity"`
	MarketType  MarketType  `json:"market_type"`
	PriceType   PriceType   `json:"price_type"`
	TimeInForce TimeInForce `json:"time_in_force"`
	OrderType   OrderType   `json:"order_type"`
	UserDef     string      `json:"user_def,omitempty"`
}

// OrderResult is the brokerage's view of a working or finished order.
type OrderResult struct {
	OrderNo       string  `json:"order_no"`
	Symbol        string  `json:"symbol"`
	BuySell       string  `json:"buy_sell"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	FilledQty     int     `json:"filled_qty"`
	AfterQty      int     `json:"after_qty"`
	Status        string  `json:"status"`
	MarketType    string  `json:"market_type"`
	PriceType     string  `json:"price_type"`
	TimeInForce   string  `json:"time_in_force"`
	OrderType     string  `json:"order_type"`
	UserDef       string  `json:"user_def,omitempty"`
	LastTime      string  `json:"last_time,omitempty"`
	ErrorMessage  string  `json:"error_message,omitempty"`
	SeqNo         string  `json:"seq_no,omitempty"`
	AccountID     string  `json:"account,omitempty"`
	BranchNo      string  `json:"branch_no,omitempty"`
}

// FutOptPriceType is the price interpretation for derivatives orders. The
// vocabulary differs from the stock market's.
type FutOptPriceType string

const (
	FutOptPriceLimit       FutOptPriceType = "Limit"
	FutOptPriceMarket      FutOptPriceType = "Market"
	FutOptPriceMarketRange FutOptPriceType = "RangeMarket"
)

// FutOptOrderType selects position handling: open new, close existing, or
// let the venue decide.
type FutOptOrderType string

const (
	FutOptNew   FutOptOrderType = "New"
	FutOptCover FutOptOrderType = "Close"
	FutOptAuto  FutOptOrderType = "Auto"
)

// FutOptMarketType selects the derivatives session.
type FutOptMarketType string

const (
	MarketFuture      FutOptMarketType = "Future"
	MarketFutureNight FutOptMarketType = "FutureNight"
	MarketOption      FutOptMarketType = "Option"
	MarketOptionNight FutOptMarketType = "OptionNight"
)

var (
	futOptPriceTypes = map[string]FutOptPriceType{
		"limit":        FutOptPriceLimit,
		"market":       FutOptPriceMarket,
		"market-range": FutOptPriceMarketRange,
	}
	futOptOrderTypes = map[string]FutOptOrderType{
		"new":   FutOptNew,
		"cover": FutOptCover,
		"auto":  FutOptAuto,
	}
	futOptMarketTypes = map[string]FutOptMarketType{
		"future":       MarketFuture,
		"future-night": MarketFutureNight,
		"option":       MarketOption,
		"option-night": MarketOptionNight,
	}
)

// ParseFutOptPriceType maps the CLI spelling to a FutOptPriceType.
func ParseFutOptPriceType(s string) (FutOptPriceType, error) {
	v, ok := futOptPriceTypes[s]
	if !ok {
		return "", fmt.Errorf("unknown price type %q", s)
	}
	return v, nil
}

// ParseFutOptOrderType maps the CLI spelling to a FutOptOrderType.
func ParseFutOptOrderType(s string) (FutOptOrderType, error) {
	v, ok := futOptOrderTypes[s]
	if !ok {
		return "", fmt.Errorf("unknown order type %q", s)
	}
	return v, nil
}

// ParseFutOptMarketType maps the CLI spelling to a FutOptMarketType.
func ParseFutOptMarketType(s string) (FutOptMarketType, error) {
	v, ok := futOptMarketTypes[s]
	if !ok {
		return "", fmt.Errorf("unknown market type %q", s)
	}
	return v, nil
}

// FutOptOrder is a futures/options order specification.
type FutOptOrder struct {
	BuySell     BSAction         `json:"buy_sell"`
	Symbol      string           `json:"symbol"`
	Price       string           `json:"price,omitempty"`
	Lot         int              `json:"lot"`
	MarketType  FutOptMarketType `json:"market_type"`
	PriceType   FutOptPriceType  `json:"price_type"`
	TimeInForce TimeInForce      `json:"time_in_force"`
	OrderType   FutOptOrderType  `json:"order_type"`
}

// PriceModification pairs a working order with its replacement price.
type PriceModification struct {
	Target OrderResult `json:"target"`
	Price  string      `json:"price"`
}

// QuantityModification pairs a working order with its replacement quantity.
type QuantityModification struct {
	Target   OrderResult `json:"target"`
	Quantity int         `json:"quantity"`
}

// SubscribeRequest names one realtime market-data subscription.
type SubscribeRequest struct {
	Channel string `json:"channel"`
	Symbol  string `json:"symbol"`
}

// Event is one realtime message delivered on a stream channel: a market
// data tick, an order/fill callback, or a transport-level notice.
type Event struct {
	Kind string         `json:"event"`
	Data map[string]any `json:"data,omitempty"`
}
