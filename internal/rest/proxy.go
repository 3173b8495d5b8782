package rest

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lifeverse/dm-frontend/internal/config"
)

// Proxy forwards /api/* to the backend, attaching the bearer token from the
// session cookie. Event-stream responses are flushed through chunk by
// chunk so live updates reach the browser immediately.
type Proxy struct {
	backendURL *url.URL
	httpClient *http.Client
}

// NewProxy builds the pass-through client. No client timeout is set: the
// proxied dm/stream connection stays open until either side closes, and
// regular calls are bounded by the incoming request context.
func NewProxy(cfg *config.Config) (*Proxy, error) {
	backendURL, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend URL: %w", err)
	}

	return &Proxy{
		backendURL: backendURL,
		httpClient: &http.Client{},
	}, nil
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Proxy")

	target := *p.backendURL
	target.Path = strings.TrimSuffix(target.Path, "/") + strings.TrimPrefix(r.URL.Path, "/api")
	target.RawQuery = r.URL.RawQuery

	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = r.Body
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), body)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create proxy request: %v", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	copyHeaders(req.Header, r.Header)
	req.Header.Del("Host")
	req.Header.Del("Connection")
	req.Header.Del("Cookie")

	if cookie, cerr := r.Cookie(config.AccessTokenCookie); cerr == nil {
		req.Header.Set("Authorization", "Bearer "+cookie.Value)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		logger.Error(fmt.Sprintf("proxy request to %s failed: %v", target.Path, err))
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close() //nolint:errcheck // .

	copyHeaders(w.Header(), resp.Header)
	w.Header().Del("Connection")
	w.WriteHeader(resp.StatusCode)

	if resp.StatusCode == http.StatusNoContent {
		return
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "text/event-stream") {
		p.streamThrough(w, resp.Body)
		return
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Error(fmt.Sprintf("failed to copy proxy response: %v", err))
	}
}

// streamThrough relays an event stream, flushing after every read so the
// client is never stuck behind the gateway's buffering.
func (p *Proxy) streamThrough(w http.ResponseWriter, body io.Reader) {
	flusher, canFlush := w.(http.Flusher)

	buf := make([]byte, 4096)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
		if err != nil {
			return
		}
	}
}

func copyHeaders(dst, src http.Header) {
	for name, values := range src {
		for _, value := range values {
			dst.Add(name, value)
		}
	}
}
