package httpx

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/proxy"
)

var clientHelloIDs = []utls.ClientHelloID{
	utls.HelloChrome_Auto,
	utls.HelloFirefox_Auto,
	utls.HelloSafari_Auto,
	utls.HelloEdge_Auto,
}

var browserUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64; rv:124.0) Gecko/20100101 Firefox/124.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
}

// ProxyRotator cycles through a fixed set of proxy URLs. An empty
// rotator means direct connections.
type ProxyRotator struct {
	parsedURLs []*url.URL
	currentIdx uint32
}

func NewProxyRotator(proxyURLs []string) (*ProxyRotator, error) {
	rotator := &ProxyRotator{}

	for _, rawURL := range proxyURLs {
		parsedURL, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy URL %s: %w", rawURL, err)
		}
		rotator.parsedURLs = append(rotator.parsedURLs, parsedURL)
	}

	return rotator, nil
}

func (r *ProxyRotator) NextProxy() *url.URL {
	if len(r.parsedURLs) == 0 {
		return nil
	}

	idx := atomic.AddUint32(&r.currentIdx, 1) % uint32(len(r.parsedURLs))
	return r.parsedURLs[idx]
}

// fingerprintingDialer establishes TLS connections with a randomized
// browser ClientHello, optionally through an HTTP or SOCKS5 proxy.
type fingerprintingDialer struct {
	proxyURL      *url.URL
	clientHelloID utls.ClientHelloID
}

func newFingerprintingDialer(proxyURL *url.URL) *fingerprintingDialer {
	return &fingerprintingDialer{
		proxyURL:      proxyURL,
		clientHelloID: clientHelloIDs[rand.Intn(len(clientHelloIDs))],
	}
}

func (d *fingerprintingDialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	var conn net.Conn
	var err error

	if d.proxyURL == nil {
		var dialer net.Dialer
		conn, err = dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("direct dial: %w", err)
		}
	} else {
		conn, err = d.dialThroughProxy(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("proxy dial: %w", err)
		}
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	uconn := utls.UClient(conn, &utls.Config{ServerName: host}, d.clientHelloID)
	if err := uconn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS handshake: %w", err)
	}

	return uconn, nil
}

func (d *fingerprintingDialer) dialThroughProxy(ctx context.Context, network, addr string) (net.Conn, error) {
	switch d.proxyURL.Scheme {
	case "http", "https":
		transport := &http.Transport{Proxy: http.ProxyURL(d.proxyURL)}
		return transport.DialContext(ctx, network, addr)

	case "socks5":
		auth := &proxy.Auth{}
		if d.proxyURL.User != nil {
			auth.User = d.proxyURL.User.Username()
			if password, ok := d.proxyURL.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", d.proxyURL.Host, auth, &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
		}

		if cd, ok := dialer.(proxy.ContextDialer); ok {
			return cd.DialContext(ctx, network, addr)
		}
		return dialer.Dial(network, addr)

	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s", d.proxyURL.Scheme)
	}
}

// FingerprintingTransport rotates proxies and presents a browser-like
// TLS fingerprint and headers on every request. With no proxies
// configured it dials directly but still fingerprints. The base
// transport is never written after construction; each request works on
// its own clone, so concurrent callers stay independent.
type FingerprintingTransport struct {
	rotator *ProxyRotator
	base    *http.Transport
}

func NewFingerprintingTransport(rotator *ProxyRotator) http.RoundTripper {
	return &FingerprintingTransport{
		rotator: rotator,
		base: &http.Transport{
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			ForceAttemptHTTP2:     false,
		},
	}
}

func (t *FingerprintingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	// Proxy choice and ClientHello are per-request; they go on a clone
	// so one request's dial never leaks into another's.
	transport := t.base.Clone()

	proxyURL := t.rotator.NextProxy()
	if proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if req.URL.Scheme == "https" {
		transport.DialTLSContext = newFingerprintingDialer(proxyURL).DialTLSContext
	}

	if reqCopy.Header.Get("User-Agent") == "" {
		reqCopy.Header.Set("User-Agent", browserUserAgents[rand.Intn(len(browserUserAgents))])
	}
	reqCopy.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")
	reqCopy.Header.Set("Accept-Language", "en-US,en;q=0.9")
	reqCopy.Header.Set("Accept-Encoding", "gzip, deflate")

	return transport.RoundTrip(reqCopy)
}

// MaskProxyURL hides credentials when logging proxy URLs.
func MaskProxyURL(proxyURL string) string {
	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return "[masked]"
	}

	if parsedURL.User != nil {
		parsedURL.User = url.UserPassword(parsedURL.User.Username(), "****")
	}

	return parsedURL.String()
}
