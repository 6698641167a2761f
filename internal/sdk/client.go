package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/models"
)

// Config holds the transport endpoints for the brokerage API.
type Config struct {
	// BaseURL is the REST endpoint root.
	BaseURL string
	// StreamURL is the websocket endpoint for realtime data.
	StreamURL string
	// Timeout bounds each REST request.
	Timeout time.Duration
}

// Compile-time interface check.
var _ Client = (*restClient)(nil)

type restClient struct {
	http      *resty.Client
	streamURL string
	log       *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewClient builds a Client talking to the brokerage over REST and
// websocket transports.
func NewClient(cfg Config, log *logger.Logger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.fbs.com.tw/neo"
	}
	if cfg.StreamURL == "" {
		cfg.StreamURL = "wss://api.fbs.com.tw/neo/streaming"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &restClient{http: cli, streamURL: cfg.StreamURL, log: log}
}

// NewFactory returns a Factory producing clients with the given config.
func NewFactory(cfg Config, log *logger.Logger) Factory {
	return func() Client {
		return NewClient(cfg, log)
	}
}

func (c *restClient) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *restClient) sessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// apiResult is the brokerage's uniform response envelope.
type apiResult struct {
	IsSuccess bool            `json:"is_success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

// call performs one REST round trip and decodes the result payload into
// out (when out is non-nil). A transport failure comes back wrapped; a
// brokerage rejection comes back as *Error with the server text verbatim.
func (c *restClient) call(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", uuid.NewString())
	if token := c.sessionToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var result apiResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	if !result.IsSuccess {
		msg := result.Message
		if msg == "" {
			msg = "unknown error"
		}
		return &Error{Message: msg}
	}

	if out != nil && len(result.Data) > 0 {
		if err = json.Unmarshal(result.Data, out); err != nil {
			return fmt.Errorf("decode %s data: %w", path, err)
		}
	}
	return nil
}

// callRaw is call for endpoints whose payload shape is passed through
// untouched: the decoded JSON value is returned as-is.
func (c *restClient) callRaw(ctx context.Context, method, path string, body any) (any, error) {
	var out any
	if err := c.call(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return &Error{Message: fmt.Sprintf("http %d: %s", resp.StatusCode(), body)}
}

func (c *restClient) Login(ctx context.Context, creds models.Credentials) ([]Account, error) {
	var payload struct {
		Token    string    `json:"token"`
		Accounts []Account `json:"accounts"`
	}

	if err := c.call(ctx, http.MethodPost, "/v1/auth/login", creds, &payload); err != nil {
		return nil, err
	}

	c.setToken(payload.Token)
	c.log.Debug().Int("accounts", len(payload.Accounts)).Msg("sdk login ok")
	return payload.Accounts, nil
}

func (c *restClient) Logout(ctx context.Context) error {
	if c.sessionToken() == "" {
		return nil
	}
	err := c.call(ctx, http.MethodPost, "/v1/auth/logout", nil, nil)
	c.setToken("")
	return err
}

func (c *restClient) Stock() StockService           { return &stockService{c} }
func (c *restClient) Accounting() AccountingService { return &accountingService{c} }
func (c *restClient) FutOpt() FutOptService         { return &futOptService{c} }
func (c *restClient) Condition() ConditionService   { return &conditionService{c} }
func (c *restClient) MarketData() MarketDataService { return &marketDataService{c} }
func (c *restClient) Realtime() RealtimeService {
	return &realtimeService{client: c, log: c.log.GetChildLogger()}
}

func (c *restClient) Close() error {
	return nil
}
