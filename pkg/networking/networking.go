package networking

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/mosaiq/go-import-framework/pkg/configuration"
	"github.com/mosaiq/go-import-framework/pkg/networking/certs"
	"github.com/mosaiq/go-import-framework/pkg/networking/middleware"
)

//go:generate $GOPATH/bin/mockgen -source=networking.go -destination ../mocks/networking.go -package mocks -self_package github.com/mosaiq/go-import-framework/pkg/networking/

// apiKeyHeaderField carries the token that authenticates requests to the platform.
const apiKeyHeaderField = "X-Api-Key"

// NetworkAccess provides the shared http clients of an application. Requests
// to the configured platform host automatically carry authentication and the
// common headers, requests to other hosts never do.
type NetworkAccess interface {
	// GetDefaultHeader returns the default header for the given URL.
	GetDefaultHeader(url *url.URL) http.Header
	// GetRoundTripper returns the default round tripper.
	GetRoundTripper() http.RoundTripper
	// GetHttpClient returns the default http client.
	GetHttpClient() *http.Client
	// GetUnauthorizedHttpClient returns an http client that does not attach
	// credentials to its requests, for fetching from arbitrary remote hosts.
	GetUnauthorizedHttpClient() *http.Client
	// AddHeaderField adds a header field to the default header.
	AddHeaderField(key string, value string)
	// AddRootCAs adds the root CAs from the given PEM file.
	AddRootCAs(pemFileLocation string) error
	// SetLogger sets the logger used by the network stack.
	SetLogger(logger *zerolog.Logger)
	// GetLogger returns the logger used by the network stack.
	GetLogger() *zerolog.Logger
	// SetUserAgent sets the user agent attached to outgoing requests.
	SetUserAgent(ua UserAgentInfo)
	// GetUserAgent returns the user agent attached to outgoing requests.
	GetUserAgent() UserAgentInfo
}

type networkImpl struct {
	config       configuration.Configuration
	userAgent    UserAgentInfo
	staticHeader http.Header
	logger       *zerolog.Logger
	proxy        func(req *http.Request) (*url.URL, error)
	caPool       *x509.CertPool
}

// customRoundTripper decorates requests with the default headers and logs the
// exchange before handing over to the encapsulated round tripper.
type customRoundTripper struct {
	encapsulatedRoundTripper http.RoundTripper
	networkAccess            *networkImpl
	attachCredentials        bool
}

func (crt *customRoundTripper) decorateRequest(request *http.Request) *http.Request {
	defaultHeader := crt.networkAccess.defaultHeader(request.URL, crt.attachCredentials)

	// iterate over default headers and add them if there is no existing entry yet
	for k, v := range defaultHeader {
		if _, found := request.Header[k]; !found {
			for i := range v {
				request.Header.Add(k, v[i])
			}
		}
	}

	return request
}

func (crt *customRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	request = crt.decorateRequest(request)

	LogRequest(request, crt.networkAccess.logger)

	response, err := crt.encapsulatedRoundTripper.RoundTrip(request)
	if err == nil {
		LogResponse(response, crt.networkAccess.logger)
	}

	return response, err
}

// NewNetworkAccess creates the network stack from the given configuration.
func NewNetworkAccess(config configuration.Configuration) NetworkAccess {
	logger := zerolog.Nop()

	n := &networkImpl{
		config:       config,
		userAgent:    UserAgent(),
		staticHeader: http.Header{},
		logger:       &logger,
		proxy:        http.ProxyFromEnvironment,
	}

	return n
}

func (n *networkImpl) AddHeaderField(key string, value string) {
	n.staticHeader[key] = append(n.staticHeader[key], value)
}

func (n *networkImpl) GetDefaultHeader(url *url.URL) http.Header {
	return n.defaultHeader(url, true)
}

func (n *networkImpl) defaultHeader(url *url.URL, attachCredentials bool) http.Header {
	h := http.Header{}

	// add static header
	for k, v := range n.staticHeader {
		for i := range v {
			h.Add(k, v[i])
		}
	}

	if url != nil && attachCredentials {
		apiUrl := n.config.GetUrl(configuration.API_URL)

		// requests to the api automatically get the authentication token attached
		if apiUrl != nil && url.Host == apiUrl.Host {
			token := n.config.GetString(configuration.AUTHENTICATION_TOKEN)
			if len(token) > 0 {
				h.Add(apiKeyHeaderField, token)
			}
		}
	}

	h.Add("User-Agent", n.userAgent.String())
	return h
}

func (n *networkImpl) createRoundTripper(attachCredentials bool) http.RoundTripper {
	// configure insecure
	insecure := n.config.GetBool(configuration.INSECURE_HTTPS)

	// create transport
	transport := &http.Transport{
		Proxy: n.proxy,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecure, //nolint:gosec // qualified user request
			RootCAs:            n.caPool,
		},
	}

	// encapsulate everything
	var roundTripper http.RoundTripper = &customRoundTripper{
		encapsulatedRoundTripper: transport,
		networkAccess:            n,
		attachCredentials:        attachCredentials,
	}
	roundTripper = middleware.NewRetryMiddleware(n.config, n.logger, roundTripper)
	return roundTripper
}

func (n *networkImpl) GetRoundTripper() http.RoundTripper {
	return n.createRoundTripper(true)
}

func (n *networkImpl) GetHttpClient() *http.Client {
	client := *http.DefaultClient
	client.Transport = n.GetRoundTripper()
	return &client
}

func (n *networkImpl) GetUnauthorizedHttpClient() *http.Client {
	client := *http.DefaultClient
	client.Transport = n.createRoundTripper(false)
	return &client
}

func (n *networkImpl) AddRootCAs(pemFileLocation string) error {
	var err error

	if len(pemFileLocation) > 0 {
		if n.caPool == nil {
			n.caPool, err = x509.SystemCertPool()
		}

		if err == nil {
			err = certs.AddCertificatesToPool(n.caPool, pemFileLocation)
		}
	}

	return err
}

func (n *networkImpl) SetLogger(logger *zerolog.Logger) {
	n.logger = logger
}

func (n *networkImpl) GetLogger() *zerolog.Logger {
	return n.logger
}

func (n *networkImpl) SetUserAgent(ua UserAgentInfo) {
	n.userAgent = ua
}

func (n *networkImpl) GetUserAgent() UserAgentInfo {
	return n.userAgent
}
