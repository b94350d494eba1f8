package inject

import (
	"io"
	"net/http"
	"strconv"
	"strings"
)

const (
	headAnchor = "</head>"
	bodyAnchor = "</body>"
)

// Rewrite returns resp with the token script spliced into its HTML body.
//
// Non-HTML responses (content type not containing "text/html") pass through
// unchanged, same pointer. HTML responses always come back as a fresh
// response with cloned headers: the script is inserted once, immediately
// before the first literal "</head>", falling back to the first "</body>";
// with neither anchor the body is carried over untouched.
//
// The input body is fully drained and closed. A body read error is returned
// as is; no response is fabricated for it.
//
// Rewrite is single-pass: running it over its own output injects a second
// copy of the script. Callers must not feed it already-rewritten responses.
func Rewrite(resp *http.Response) (*http.Response, error) {
	if !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return resp, nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	body := string(b)
	if i := strings.Index(body, headAnchor); i != -1 {
		body = body[:i] + snippet + body[i:]
	} else if i := strings.Index(body, bodyAnchor); i != -1 {
		body = body[:i] + snippet + body[i:]
	}

	out := &http.Response{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Proto:      resp.Proto,
		ProtoMajor: resp.ProtoMajor,
		ProtoMinor: resp.ProtoMinor,
		Header:     resp.Header.Clone(),
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    resp.Request,
		TLS:        resp.TLS,
	}
	out.ContentLength = int64(len(body))
	// net/http writes Content-Length from the header map; a stale value
	// would truncate the grown body on the wire.
	if len(body) != len(b) && out.Header.Get("Content-Length") != "" {
		out.Header.Set("Content-Length", strconv.Itoa(len(body)))
	}
	return out, nil
}

// Injected reports whether body already carries the script snippet.
func Injected(body string) bool {
	return strings.Contains(body, snippet)
}
