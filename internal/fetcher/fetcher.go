package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Mfaj-cod/AstroKnowMe/internal/config"
	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

const maxBodyBytes = 16 << 20

// Fetcher holds the shared HTTP client and config for all source adapters.
type Fetcher struct {
	client *http.Client
	cfg    *config.Config
	now    func() time.Time
}

func New(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: cfg.FetchTimeout},
		cfg:    cfg,
		now:    time.Now,
	}
}

// Request is a single upstream call. Query is appended to the URL; Form, if
// set, is sent as a url-encoded POST body.
type Request struct {
	Source string
	Method string
	URL    string
	Query  url.Values
	Form   url.Values
}

// Result is the outcome of one upstream call: either a decoded JSON value or
// a failure reason in Err. It never carries both.
type Result struct {
	Source string
	URL    string
	Status int
	Body   json.RawMessage
	Value  any
	Err    error
}

// OK reports whether the call produced decoded JSON.
func (r Result) OK() bool {
	return r.Err == nil
}

// Object collapses the result to a JSON object, or an empty one when the call
// failed or returned some other JSON kind.
func (r Result) Object() model.Object {
	if !r.OK() {
		return model.Object{}
	}
	if m, ok := r.Value.(map[string]any); ok {
		return model.Object(m)
	}
	slog.Warn("upstream returned non-object payload", "source", r.Source, "url", r.URL)
	return model.Object{}
}

// List collapses the result to a JSON array, or an empty one when the call
// failed or returned some other JSON kind.
func (r Result) List() model.List {
	if !r.OK() {
		return model.List{}
	}
	if l, ok := r.Value.([]any); ok {
		return model.List(l)
	}
	if m, ok := r.Value.(map[string]any); !ok || len(m) > 0 {
		slog.Warn("upstream returned non-list payload", "source", r.Source, "url", r.URL)
	}
	return model.List{}
}

// Fetch performs req with the Accept: application/json header and the
// configured timeout. Every failure is logged and returned inside the Result;
// Fetch itself never fails.
func (f *Fetcher) Fetch(ctx context.Context, req Request) Result {
	res := f.do(ctx, req)
	if res.Err != nil {
		logFailure(res.Err)
	}
	return res
}

func (f *Fetcher) do(ctx context.Context, req Request) Result {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := req.URL
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.Query.Encode()
	}
	res := Result{Source: req.Source, URL: target}

	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		res.Err = &Error{Kind: ErrTransport, Source: req.Source, URL: target, Err: err}
		return res
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		res.Err = &Error{Kind: ErrTransport, Source: req.Source, URL: target, Err: err}
		return res
	}
	defer resp.Body.Close()
	res.Status = resp.StatusCode

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		res.Err = &Error{Kind: ErrTransport, Source: req.Source, URL: target, Status: resp.StatusCode, Err: err}
		return res
	}

	if resp.StatusCode != http.StatusOK {
		res.Err = &Error{Kind: ErrStatus, Source: req.Source, URL: target, Status: resp.StatusCode, Body: snippet(raw)}
		return res
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		res.Err = &Error{Kind: ErrDecode, Source: req.Source, URL: target, Status: resp.StatusCode, Err: err}
		return res
	}

	res.Body = raw
	res.Value = value
	return res
}

func logFailure(err error) {
	var fe *Error
	if !errors.As(err, &fe) {
		slog.Warn("api request failed", "error", err)
		return
	}
	attrs := []any{"source", fe.Source, "url", fe.URL, "kind", fe.Kind.Error()}
	if fe.Status != 0 {
		attrs = append(attrs, "status", fe.Status)
	}
	if fe.Err != nil {
		attrs = append(attrs, "error", fe.Err)
	}
	if fe.Body != "" {
		attrs = append(attrs, "body", fe.Body)
	}
	slog.Warn("api request failed", attrs...)
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
