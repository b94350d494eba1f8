package inject

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	. "github.com/moltbot/gateway/internal/utils/testing"
)

const accessorName = "getMoltbotToken"

func newResp(contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        h,
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b := Must(io.ReadAll(resp.Body))
	return string(b)
}

func TestPassThroughNonHTML(t *testing.T) {
	body := `{"test":"data"}`
	resp := newResp("application/json", body)
	out := Must(Rewrite(resp))

	ExpectTrue(t, out == resp)
	got := readBody(t, out)
	ExpectEqual(t, got, body)
	ExpectFalse(t, strings.Contains(got, accessorName))
}

func TestPassThroughMissingContentType(t *testing.T) {
	body := "<html><head></head><body></body></html>"
	resp := newResp("", body)
	out := Must(Rewrite(resp))

	ExpectTrue(t, out == resp)
	ExpectEqual(t, readBody(t, out), body)
}

func TestPassThroughHTMLLikeBody(t *testing.T) {
	// anchor in the body must not trigger injection for non-HTML content types
	body := `{"html":"</head></body>"}`
	resp := newResp("application/json", body)
	out := Must(Rewrite(resp))

	ExpectTrue(t, out == resp)
	ExpectFalse(t, strings.Contains(readBody(t, out), accessorName))
}

func TestInjectBeforeHead(t *testing.T) {
	body := "<html><head><title>Test</title></head><body>Content</body></html>"
	resp := newResp("text/html", body)
	out := Must(Rewrite(resp))

	ExpectTrue(t, out != resp)
	got := readBody(t, out)
	accessorIdx := strings.Index(got, accessorName)
	headIdx := strings.Index(got, headAnchor)
	ExpectTrue(t, accessorIdx != -1)
	ExpectTrue(t, accessorIdx < headIdx)
	ExpectTrue(t, strings.HasSuffix(got[:headIdx], snippet))
}

func TestInjectBeforeBodyFallback(t *testing.T) {
	body := "<html><body>Content</body></html>"
	resp := newResp("text/html; charset=utf-8", body)
	out := Must(Rewrite(resp))

	got := readBody(t, out)
	accessorIdx := strings.Index(got, accessorName)
	bodyIdx := strings.Index(got, bodyAnchor)
	ExpectTrue(t, accessorIdx != -1)
	ExpectTrue(t, accessorIdx < bodyIdx)
}

func TestFirstAnchorWins(t *testing.T) {
	body := "<head>a</head><head>b</head><body>c</body>"
	resp := newResp("text/html", body)
	out := Must(Rewrite(resp))

	got := readBody(t, out)
	ExpectEqual(t, strings.Count(got, snippet), 1)
	ExpectEqual(t, got, "<head>a"+snippet+"</head><head>b</head><body>c</body>")
}

func TestNoAnchorCopy(t *testing.T) {
	body := "<p>no closing tags here</p>"
	resp := newResp("text/html", body)
	out := Must(Rewrite(resp))

	ExpectTrue(t, out != resp)
	got := readBody(t, out)
	ExpectEqual(t, got, body)
	ExpectFalse(t, strings.Contains(got, accessorName))

	// headers are copied, not aliased
	out.Header.Set("X-Mutated", "1")
	ExpectEqual(t, resp.Header.Get("X-Mutated"), "")
}

func TestPreservesStatusAndHeaders(t *testing.T) {
	body := "<html><head></head><body></body></html>"
	resp := newResp("text/html", body)
	resp.Status = "418 I'm a teapot"
	resp.StatusCode = http.StatusTeapot
	resp.Header.Set("X-Single", "one")
	resp.Header.Add("X-Multi", "a")
	resp.Header.Add("X-Multi", "b")

	out := Must(Rewrite(resp))

	ExpectEqual(t, out.StatusCode, http.StatusTeapot)
	ExpectEqual(t, out.Status, "418 I'm a teapot")
	ExpectEqual(t, out.Header.Get("X-Single"), "one")
	ExpectDeepEqual(t, out.Header.Values("X-Multi"), []string{"a", "b"})
	ExpectEqual(t, out.Header.Get("Content-Type"), "text/html")
}

func TestContentLengthTracksGrownBody(t *testing.T) {
	body := "<html><head></head></html>"
	resp := newResp("text/html", body)
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))

	out := Must(Rewrite(resp))
	got := readBody(t, out)

	ExpectEqual(t, out.ContentLength, int64(len(got)))
	ExpectEqual(t, out.Header.Get("Content-Length"), strconv.Itoa(len(got)))
}

func TestSecondPassReinjects(t *testing.T) {
	// single-pass rewrite does not dedup, re-running doubles the script
	body := "<html><head></head></html>"
	first := Must(Rewrite(newResp("text/html", body)))
	second := Must(Rewrite(first))

	got := readBody(t, second)
	ExpectEqual(t, strings.Count(got, accessorName), 2)
	ExpectTrue(t, Injected(got))
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestBodyReadErrorPropagates(t *testing.T) {
	readErr := errors.New("stream already consumed")
	resp := newResp("text/html", "")
	resp.Body = io.NopCloser(errReader{readErr})

	out, err := Rewrite(resp)
	ExpectTrue(t, out == nil)
	ExpectError(t, readErr, err)
}

func TestSnippetStable(t *testing.T) {
	ExpectEqual(t, Snippet(), Snippet())
	ExpectTrue(t, strings.HasPrefix(Snippet(), "<script>"))
	ExpectTrue(t, strings.HasSuffix(Snippet(), "</script>\n"))
	ExpectTrue(t, strings.Contains(Snippet(), "moltbot_gateway_token"))
	ExpectTrue(t, strings.Contains(Snippet(), accessorName))
}
