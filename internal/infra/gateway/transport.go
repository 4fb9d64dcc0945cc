package gateway

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"storefront/internal/errors"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// errH2NotNegotiated is returned by the h2 dialer before any request bytes are written.
var errH2NotNegotiated = errors.New("server did not negotiate h2")

// NewChromeTransport returns a RoundTripper that presents Chrome's TLS
// fingerprint. HTTP/2 is tried first and HTTP/1.1 is used when the server
// does not negotiate h2.
func NewChromeTransport(timeout time.Duration) http.RoundTripper {
	dialer := &net.Dialer{Timeout: timeout}

	h2Transport := &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			conn, err := dialChromeTLS(ctx, dialer, network, addr)
			if err != nil {
				return nil, err
			}
			if conn.ConnectionState().NegotiatedProtocol != http2.NextProtoTLS {
				_ = conn.Close()

				return nil, errH2NotNegotiated
			}

			return conn, nil
		},
	}

	h1Transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := dialChromeTLS(ctx, dialer, network, addr)
			if err != nil {
				return nil, err
			}

			return conn, nil
		},
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   false,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}

	return &chromeTransport{h2: h2Transport, h1: h1Transport}
}

type chromeTransport struct {
	h2 http.RoundTripper
	h1 http.RoundTripper
}

// RoundTrip sends plain-http requests over HTTP/1.1 and tries h2 first for https.
// A failed h2 attempt is replayed over HTTP/1.1 only when nothing was sent or the
// method is safe to repeat.
func (t *chromeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}
	if !replayableOverH1(req, err) {
		return nil, err
	}
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return nil, err
	}
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, errors.Wrap(bodyErr, "rewind request body")
		}
		req = req.Clone(req.Context())
		req.Body = body
	}

	return t.h1.RoundTrip(req)
}

func replayableOverH1(req *http.Request, err error) bool {
	if errors.Is(err, errH2NotNegotiated) {
		return true
	}

	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func dialChromeTLS(ctx context.Context, dialer *net.Dialer, network, addr string) (*utls.UConn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, errors.Wrap(err, "dial")
	}

	tlsConn := utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloChrome_Auto)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "tls handshake")
	}

	return tlsConn, nil
}

// newRoundTripper picks the Chrome transport or a tuned clone of the default one.
func newRoundTripper(chromeTLS bool, timeout time.Duration) http.RoundTripper {
	if chromeTLS {
		return NewChromeTransport(timeout)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 4
	transport.ResponseHeaderTimeout = timeout

	return transport
}
