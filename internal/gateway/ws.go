package gateway

import (
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/moltbot/gateway/internal/logging"
	"github.com/moltbot/gateway/internal/metrics"
	"github.com/moltbot/gateway/internal/net/gphttp"
)

type (
	session struct {
		conn      *websocket.Conn
		remote    string
		closeOnce sync.Once
	}

	statusFrame struct {
		Uptime   string `json:"uptime"`
		Sessions int    `json:"sessions"`
		Upstream string `json:"upstream"`
	}
)

func (s *session) close() {
	s.closeOnce.Do(func() {
		//nolint:errcheck
		s.conn.CloseNow()
	})
}

var warnAllOriginsOnce sync.Once

// originPatterns maps configured match domains to websocket origin
// patterns, with RFC1918 local addresses always allowed.
func originPatterns(matchDomains []string) []string {
	if len(matchDomains) == 0 {
		return []string{"*"}
	}
	localAddresses := []string{"127.0.0.1", "10.0.*.*", "172.16.*.*", "192.168.*.*"}
	pats := make([]string, len(matchDomains))
	for i, domain := range matchDomains {
		if domain[0] != '.' {
			pats[i] = "*." + domain
		} else {
			pats[i] = "*" + domain
		}
	}
	return append(pats, localAddresses...)
}

func (g *Gateway) initiate(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	pats := g.state.Load().originPats
	if len(pats) == 1 && pats[0] == "*" {
		warnAllOriginsOnce.Do(func() {
			logging.Warn().Msg("no match domains configured, accepting websocket request from all origins")
		})
	}
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: pats,
	})
}

// serveStatus pushes a status frame on every interval tick until the
// client goes away. The token query parameter is carried by the page's
// websocket client (see the injected script) but is not validated here.
func (g *Gateway) serveStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := g.initiate(w, r)
	if err != nil {
		gphttp.ServerError(w, r, err)
		return
	}

	id := g.nextID.Add(1)
	sess := &session{conn: conn, remote: r.RemoteAddr}
	g.sessions.Store(id, sess)
	g.l.Debug().Str("remote", sess.remote).Msg("status session opened")
	metrics.GetGatewayMetrics().AddWSSession(1)
	defer func() {
		g.sessions.Delete(id)
		metrics.GetGatewayMetrics().AddWSSession(-1)
		sess.close()
	}()

	interval := g.Config().Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := wsjson.Write(r.Context(), conn, g.status()); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) status() statusFrame {
	return statusFrame{
		Uptime:   g.Uptime().Round(time.Second).String(),
		Sessions: g.sessions.Size(),
		Upstream: g.Config().Upstream,
	}
}
