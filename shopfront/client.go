package shopfront

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shopfront-dev/go-shopfront-client/shopfront/api"
)

var logger = logrus.WithField("component", "shopfront")

// EnvAPIURL names the environment variable carrying the API base URL.
const EnvAPIURL = "SHOPFRONT_API_URL"

// Client bundles the per-resource services over one shared executor.
type Client struct {
	Auth      AuthService
	Products  ProductService
	Purchases PurchaseService
	Wishlist  WishlistService

	core *api.Client
}

func New(cfg api.Config) (*Client, error) {
	core, err := api.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		Auth:      NewAuthService(core),
		Products:  NewProductService(core),
		Purchases: NewPurchaseService(core),
		Wishlist:  NewWishlistService(core),
		core:      core,
	}, nil
}

// Core exposes the underlying executor for callers that need raw access.
func (c *Client) Core() *api.Client {
	return c.core
}

// ConfigFromEnv reads the base URL from SHOPFRONT_API_URL. A missing URL is
// a warning, not a failure: construction still succeeds so that code paths
// with no immediate network need keep working.
func ConfigFromEnv() api.Config {
	base, ok := os.LookupEnv(EnvAPIURL)
	base = strings.TrimSpace(base)
	if !ok || base == "" {
		logger.Warnf("%s is not set, API calls will fail until a base URL is configured", EnvAPIURL)
	}
	return api.Config{
		BaseURL:     base,
		Credentials: api.CredentialsInclude,
	}
}
