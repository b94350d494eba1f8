package gateway

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/moltbot/gateway/internal/config"
	. "github.com/moltbot/gateway/internal/utils/testing"
)

func TestStatusWebsocket(t *testing.T) {
	up := newUpstream(t, testPage)
	cfg := Must(config.Parse([]byte(
		"upstream: \"" + up.URL + "\"\nstatus_interval: \"10ms\"")))
	g := New(cfg)

	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// the page's websocket client appends the token it got
	// from getMoltbotToken(); the gateway does not validate it
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/status?token=opaque"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	ExpectNoError(t, err)
	//nolint:errcheck
	defer conn.CloseNow()

	var frame statusFrame
	ExpectNoError(t, wsjson.Read(ctx, conn, &frame))
	ExpectEqual(t, frame.Upstream, up.URL)
	ExpectTrue(t, frame.Sessions >= 1)
}

func TestCloseSessionsDropsClients(t *testing.T) {
	up := newUpstream(t, testPage)
	cfg := Must(config.Parse([]byte(
		"upstream: \"" + up.URL + "\"\nstatus_interval: \"10ms\"")))
	g := New(cfg)

	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/status"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	ExpectNoError(t, err)
	//nolint:errcheck
	defer conn.CloseNow()

	var frame statusFrame
	ExpectNoError(t, wsjson.Read(ctx, conn, &frame))

	g.CloseSessions()

	readCtx, readCancel := context.WithTimeout(ctx, time.Second)
	defer readCancel()
	for {
		if err := wsjson.Read(readCtx, conn, &frame); err != nil {
			return // connection dropped as expected
		}
	}
}
