package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/moltbot/gateway/internal/common"
)

type GatewayMetrics struct {
	ReqTotal,
	HTMLRewritten,
	ProxyErrors *Counter
	WSSessions *Gauge
}

var gm GatewayMetrics

const (
	gatewayNamespace = "gateway"
	httpSubsystem    = "http"
	wsSubsystem      = "ws"
)

func GetGatewayMetrics() *GatewayMetrics {
	return &gm
}

func init() {
	if !common.PrometheusEnabled {
		return
	}
	gm = GatewayMetrics{
		ReqTotal: NewCounter(prometheus.CounterOpts{
			Namespace: gatewayNamespace,
			Subsystem: httpSubsystem,
			Name:      "req_total",
			Help:      "How many requests were proxied to the upstream",
		}),
		HTMLRewritten: NewCounter(prometheus.CounterOpts{
			Namespace: gatewayNamespace,
			Subsystem: httpSubsystem,
			Name:      "html_rewritten_total",
			Help:      "How many HTML responses were rewritten by the token injector",
		}),
		ProxyErrors: NewCounter(prometheus.CounterOpts{
			Namespace: gatewayNamespace,
			Subsystem: httpSubsystem,
			Name:      "proxy_errors_total",
			Help:      "How many upstream round trips or rewrites failed",
		}),
		WSSessions: NewGauge(prometheus.GaugeOpts{
			Namespace: gatewayNamespace,
			Subsystem: wsSubsystem,
			Name:      "sessions",
			Help:      "Number of active status websocket sessions",
		}),
	}
}

func (gm *GatewayMetrics) IncReqTotal() {
	if common.PrometheusEnabled {
		gm.ReqTotal.Inc()
	}
}

func (gm *GatewayMetrics) IncHTMLRewritten() {
	if common.PrometheusEnabled {
		gm.HTMLRewritten.Inc()
	}
}

func (gm *GatewayMetrics) IncProxyErrors() {
	if common.PrometheusEnabled {
		gm.ProxyErrors.Inc()
	}
}

func (gm *GatewayMetrics) AddWSSession(delta float64) {
	if !common.PrometheusEnabled {
		return
	}
	if delta > 0 {
		gm.WSSessions.Inc()
	} else {
		gm.WSSessions.Dec()
	}
}
