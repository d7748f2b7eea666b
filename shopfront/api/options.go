package api

type callConfig struct {
	headers     map[string]string
	credentials Credentials
}

// CallOption tweaks a single request. Anything not overridden here falls back
// to the client instance configuration.
type CallOption func(*callConfig)

func newCallConfig(opts []CallOption) callConfig {
	cc := callConfig{headers: map[string]string{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cc)
		}
	}
	return cc
}

// WithHeader sets one header for this call only.
func WithHeader(name, value string) CallOption {
	return func(cc *callConfig) {
		cc.headers[name] = value
	}
}

// WithHeaders sets several headers for this call only.
func WithHeaders(headers map[string]string) CallOption {
	return func(cc *callConfig) {
		for k, v := range headers {
			cc.headers[k] = v
		}
	}
}

// WithCredentials overrides the cookie policy for this call only.
func WithCredentials(mode Credentials) CallOption {
	return func(cc *callConfig) {
		cc.credentials = mode
	}
}
