package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"

	"github.com/shopfront-dev/go-shopfront-client/shopfront/apierr"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/util"
)

var logger = logrus.WithField("component", "shopfront.api")

const headerRequestID = "X-Request-Id"

// Credentials selects whether session cookies travel with a request.
// The zero value inherits from the next level down: a call inherits from the
// client instance, the instance from the global default (include).
type Credentials int

const (
	CredentialsDefault Credentials = iota
	CredentialsInclude
	CredentialsOmit
)

// ResolveCredentials flattens the three-level credential policy.
// Precedence: per-call > per-instance > include.
func ResolveCredentials(call, instance Credentials) Credentials {
	if call != CredentialsDefault {
		return call
	}
	if instance != CredentialsDefault {
		return instance
	}
	return CredentialsInclude
}

// MergeHeaders flattens header layers in increasing precedence order: a later
// layer overwrites an earlier one by canonical header name.
func MergeHeaders(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			out[textproto.CanonicalMIMEHeaderKey(k)] = v
		}
	}
	return out
}

// Config is fixed at construction time. A differently configured client is a
// new instance, not a mutation.
type Config struct {
	// BaseURL is prepended to every call path as-is, no normalization.
	BaseURL string

	// DefaultHeaders are applied to every request, overridable per call.
	DefaultHeaders map[string]string

	// Credentials is the instance-level cookie policy.
	Credentials Credentials

	// RequestID attaches a generated X-Request-Id header to every call that
	// does not already carry one.
	RequestID bool
}

// Client executes storefront API calls. Session cookies live in a jar shared
// by all credential-including calls; credential-omitting calls go through a
// jarless twin so nothing ambient leaks onto them.
type Client struct {
	rest     *resty.Client
	restBare *resty.Client
	cfg      Config
}

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		logger.Warn("base URL is empty, requests will fail until one is configured")
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "cookie jar")
	}

	return &Client{
		rest:     resty.New().SetCookieJar(jar),
		restBare: resty.New(),
		cfg:      cfg,
	}, nil
}

func Get[T any](ctx context.Context, c *Client, path string, opts ...CallOption) (*T, error) {
	return execute[T](ctx, c, http.MethodGet, path, nil, opts)
}

func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...CallOption) (*T, error) {
	return execute[T](ctx, c, http.MethodPost, path, body, opts)
}

func Delete[T any](ctx context.Context, c *Client, path string, opts ...CallOption) (*T, error) {
	return execute[T](ctx, c, http.MethodDelete, path, nil, opts)
}

func execute[T any](ctx context.Context, c *Client, method, path string, body any, opts []CallOption) (*T, error) {
	call := newCallConfig(opts)

	headers := MergeHeaders(
		map[string]string{"Content-Type": "application/json"},
		c.cfg.DefaultHeaders,
		call.headers,
	)
	if c.cfg.RequestID && headers[headerRequestID] == "" {
		headers[headerRequestID] = uuid.NewString()
	}

	r := c.transport(call.credentials).R().
		SetContext(ctx).
		SetHeaders(headers)

	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}
	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Execute(method, c.cfg.BaseURL+path)
	if err != nil {
		logger.WithError(err).Debugf("%s %s: no response", method, path)
		return nil, apierr.Classify(0, err, "")
	}

	printTraceInfo(method, path, resp)

	if !resp.IsSuccess() {
		return nil, apierr.Classify(resp.StatusCode(), decodeBody(resp), "request failed")
	}

	// Success payloads are decoded into the caller's type without any schema
	// check. An undecodable or non-JSON body degrades to an absent payload.
	if !isJSON(resp.Header().Get("Content-Type")) {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		logger.WithError(err).Debugf("%s %s: undecodable success body", method, path)
		return nil, nil
	}
	return &out, nil
}

func (c *Client) transport(call Credentials) *resty.Client {
	if ResolveCredentials(call, c.cfg.Credentials) == CredentialsOmit {
		return c.restBare
	}
	return c.rest
}

// decodeBody turns the wire body into a value suitable for classification:
// parsed JSON when the content type says so, raw text otherwise, nil when the
// body is empty or does not parse.
func decodeBody(resp *resty.Response) any {
	raw := resp.Body()
	if len(raw) == 0 {
		return nil
	}
	if isJSON(resp.Header().Get("Content-Type")) {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil
		}
		return v
	}
	return string(raw)
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

func printTraceInfo(method, path string, resp *resty.Response) {

	if !util.HttpTraceEnabled() {
		return
	}

	ti := resp.Request.TraceInfo()
	logger.WithFields(logrus.Fields{
		"status":      resp.StatusCode(),
		"proto":       resp.Proto(),
		"time":        resp.Time(),
		"dns_lookup":  ti.DNSLookup,
		"conn_time":   ti.ConnTime,
		"server_time": ti.ServerTime,
		"total_time":  ti.TotalTime,
		"conn_reused": ti.IsConnReused,
	}).Debugf("%s %s", method, path)
}
