package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

const (
	// BasePath prefixes every endpoint.
	BasePath = "/api/1.0"
	// DefaultTimeout bounds a request when no other timeout is configured.
	DefaultTimeout = 10 * time.Second
	// DefaultLanguage is sent until SetLocale is called.
	DefaultLanguage = "en"
)

const (
	headerAcceptLanguage = "Accept-Language"
	headerAuthorization  = "Authorization"
	headerContentType    = "Content-Type"
	headerRequestID      = "X-Request-ID"
	contentTypeJSON      = "application/json"
)

// AuthSource supplies the Authorization header value; "" means none.
// *session.Store satisfies it.
type AuthSource interface {
	Authorization() string
}

type noAuth struct{}

func (noAuth) Authorization() string { return "" }

// Client talks to the account service. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	auth       AuthSource
	log        logging.Logger

	mu     sync.RWMutex
	locale string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := &http.Client{}
		if c.httpClient != nil {
			copied := *c.httpClient
			hc = &copied
		}
		hc.Timeout = timeout
		c.httpClient = hc
	}
}

func WithAuthSource(auth AuthSource) Option {
	return func(c *Client) {
		c.auth = auth
	}
}

func WithLogger(log logging.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the service at baseURL (scheme://host:port).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		auth:       noAuth{},
		log:        logging.Nop(),
		locale:     DefaultLanguage,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "api")
	return c
}

// SetLocale changes the Accept-Language header of subsequent requests.
func (c *Client) SetLocale(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locale = lang
}

func (c *Client) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

func (c *Client) BaseURL() string {
	return c.baseURL
}
