package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	// ограничение на тело ответа, mp bid search на больших профилях бывает несколько мегабайт
	maxResponseBytes = 32 << 20
)

// Коды ошибок демона, при которых запрос можно повторить.
const (
	CodeInWarmup      = -28
	CodeClientNotConn = -9
)

var ErrEmptyResult = errors.New("json-rpc: empty result")

// Error - ошибка уровня приложения, вернувшаяся в поле error ответа.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("json-rpc error %d: %s", e.Code, e.Message)
}

// HTTPError - ответ без разбираемого тела JSON-RPC.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("json-rpc http status %d: %s", e.StatusCode, e.Body)
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

type Client struct {
	url      string
	user     string
	password string
	http     *http.Client
	nextID   atomic.Int64
}

type Option func(*Client)

func WithBasicAuth(user, password string) Option {
	return func(c *Client) {
		c.user = user
		c.password = password
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

func New(url string, opts ...Option) *Client {
	c := &Client{
		url:  url,
		http: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call выполняет один запрос. result может быть nil, тогда тело результата игнорируется.
func (c *Client) Call(ctx context.Context, method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("json-rpc %s: encode request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("json-rpc %s: build request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" || c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("json-rpc %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("json-rpc %s: read response: %w", method, err)
	}

	// демон отдает ошибки приложения с HTTP 500 и нормальным телом, поэтому
	// сначала пробуем разобрать тело и только потом смотрим на статус
	var rpcResp response
	if decodeErr := json.Unmarshal(raw, &rpcResp); decodeErr != nil || (rpcResp.Error == nil && rpcResp.Result == nil) {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("json-rpc %s: %w", method, &HTTPError{StatusCode: resp.StatusCode, Body: truncate(raw)})
		}
		if decodeErr != nil {
			return fmt.Errorf("json-rpc %s: decode response: %w", method, decodeErr)
		}
	}

	if rpcResp.Error != nil {
		return fmt.Errorf("json-rpc %s: %w", method, rpcResp.Error)
	}

	if result == nil {
		return nil
	}
	if len(rpcResp.Result) == 0 || bytes.Equal(rpcResp.Result, []byte("null")) {
		return fmt.Errorf("json-rpc %s: %w", method, ErrEmptyResult)
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("json-rpc %s: decode result: %w", method, err)
	}
	return nil
}

// IsRetryable: сетевые ошибки, 429/5xx без тела JSON-RPC и прогрев демона.
// Отмена контекста и ошибки приложения не ретраятся.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr.Code == CodeInWarmup || rpcErr.Code == CodeClientNotConn
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= http.StatusInternalServerError
	}

	if errors.Is(err, ErrEmptyResult) {
		return false
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return false
	}

	// остальное - транспорт: connection refused, reset, таймаут клиента
	return true
}

func truncate(raw []byte) string {
	const limit = 256
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
