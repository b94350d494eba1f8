package inject

import (
	_ "embed"
)

// token_persist.js persists the "token" query parameter to localStorage
// (key "moltbot_gateway_token") and exposes window.getMoltbotToken()
// for page scripts that need the token after load, e.g. the websocket client.
//
//go:embed token_persist.js
var tokenScript []byte

// snippet is byte-identical for every injection.
var snippet = "<script>\n" + string(tokenScript) + "</script>\n"

// Snippet returns the script block inserted before the injection anchor.
func Snippet() string {
	return snippet
}
