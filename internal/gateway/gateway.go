package gateway

import (
	"net/http"
	"net/http/httputil"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"

	"github.com/moltbot/gateway/internal/common"
	"github.com/moltbot/gateway/internal/config"
	"github.com/moltbot/gateway/internal/logging"
	"github.com/moltbot/gateway/internal/metrics"
	"github.com/moltbot/gateway/internal/net/gphttp"
	"github.com/moltbot/gateway/pkg"
)

type (
	Gateway struct {
		state     atomic.Pointer[state]
		sessions  *xsync.MapOf[int64, *session]
		nextID    atomic.Int64
		startTime time.Time
		mux       *http.ServeMux

		l zerolog.Logger
	}

	// state is everything derived from one config revision,
	// swapped atomically on reload.
	state struct {
		cfg        *config.Config
		proxy      *httputil.ReverseProxy
		originPats []string
	}
)

func New(cfg *config.Config) *Gateway {
	g := &Gateway{
		sessions:  xsync.NewMapOf[int64, *session](),
		startTime: time.Now(),
		l:         logging.With().Str("server", "gateway").Logger(),
	}
	g.state.Store(g.compile(cfg))

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/health", g.serveHealth)
	mux.HandleFunc("/v1/version", serveVersion)
	mux.HandleFunc("/v1/status", g.serveStatus)
	if common.PrometheusEnabled {
		mux.Handle("/metrics", metrics.NewHandler())
	}
	mux.HandleFunc("/", g.serveProxy)
	g.mux = mux
	return g
}

// Reload swaps in a new upstream/origin configuration without
// interrupting in-flight requests.
func (g *Gateway) Reload(cfg *config.Config) {
	g.state.Store(g.compile(cfg))
	g.l.Info().Str("upstream", cfg.Upstream).Msg("gateway reloaded")
}

func (g *Gateway) Config() *config.Config {
	return g.state.Load().cfg
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mux.ServeHTTP(w, r)
}

func (g *Gateway) Uptime() time.Duration {
	return time.Since(g.startTime)
}

func (g *Gateway) serveProxy(w http.ResponseWriter, r *http.Request) {
	metrics.GetGatewayMetrics().IncReqTotal()
	g.state.Load().proxy.ServeHTTP(w, r)
}

func serveVersion(w http.ResponseWriter, _ *http.Request) {
	gphttp.WriteBody(w, []byte(pkg.GetVersion()))
}

func (g *Gateway) serveHealth(w http.ResponseWriter, r *http.Request) {
	gphttp.RespondJSON(w, r, map[string]any{
		"status":   "healthy",
		"uptime":   g.Uptime().Round(time.Second).String(),
		"sessions": g.sessions.Size(),
		"upstream": g.Config().Upstream,
	})
}

func (g *Gateway) compile(cfg *config.Config) *state {
	return &state{
		cfg:        cfg,
		proxy:      g.newProxy(cfg.UpstreamURL()),
		originPats: originPatterns(cfg.MatchDomains),
	}
}

// CloseSessions force-closes all status websocket sessions,
// used on shutdown after the listener stopped.
func (g *Gateway) CloseSessions() {
	g.sessions.Range(func(_ int64, s *session) bool {
		s.close()
		return true
	})
}
