package httpheaders

import (
	"net/http"

	"golang.org/x/net/http/httpguts"
)

func UpgradeType(h http.Header) string {
	if !httpguts.HeaderValuesContainsToken(h["Connection"], "Upgrade") {
		return ""
	}
	return h.Get("Upgrade")
}

func IsWebsocket(h http.Header) bool {
	return UpgradeType(h) == "websocket"
}
