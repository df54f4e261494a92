package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds an HTTP client for outbound API calls. The default
// client carries no timeout, so external providers always go through this
// one. Transport limits keep idle connections bounded under load.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
