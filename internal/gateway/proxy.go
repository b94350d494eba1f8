package gateway

import (
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/moltbot/gateway/internal/common"
	"github.com/moltbot/gateway/internal/gateway/inject"
	"github.com/moltbot/gateway/internal/metrics"
)

var proxyTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   common.DialTimeout,
		KeepAlive: common.KeepAlive,
	}).DialContext,
	MaxIdleConnsPerHost: 100,
	ForceAttemptHTTP2:   false,
}

func (g *Gateway) newProxy(upstream *url.URL) *httputil.ReverseProxy {
	rp := httputil.NewSingleHostReverseProxy(upstream)
	rp.Transport = proxyTransport
	rp.ModifyResponse = g.modifyResponse
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		metrics.GetGatewayMetrics().IncProxyErrors()
		g.l.Err(err).Str("upstream", upstream.String()).Str("path", r.URL.Path).
			Msg("upstream error")
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}
	return rp
}

// modifyResponse splices the token script into HTML responses.
// Rewrite hands back a fresh response for HTML; its fields are
// swapped into place since the proxy owns the pointer.
func (g *Gateway) modifyResponse(resp *http.Response) error {
	out, err := inject.Rewrite(resp)
	if err != nil {
		return err
	}
	if out != resp {
		*resp = *out
		metrics.GetGatewayMetrics().IncHTMLRewritten()
	}
	return nil
}
