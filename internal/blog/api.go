package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/blogdesk/internal/telemetry/metrics"
	"github.com/2beens/blogdesk/internal/telemetry/tracing"
)

// example API calls
// GET  http://localhost:3001/blogs
// GET  http://localhost:3001/blogs/1718000000000
// POST http://localhost:3001/blogs

const (
	DefaultBaseURL = "http://localhost:3001"

	// same format JS Date.toISOString() produces
	isoDateLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Api talks to the remote blog service. Every call is a single attempt,
// retrying is up to the caller.
type Api struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Manager
	now        func() time.Time
}

type ApiOption func(*Api)

func WithClock(now func() time.Time) ApiOption {
	return func(a *Api) {
		a.now = now
	}
}

func WithMetrics(m *metrics.Manager) ApiOption {
	return func(a *Api) {
		a.metrics = m
	}
}

func NewApi(baseURL string, httpClient *http.Client, opts ...ApiOption) *Api {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	api := &Api{
		baseURL:    baseURL,
		httpClient: httpClient,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(api)
	}

	return api
}

func (a *Api) ListBlogs(ctx context.Context) (blogs []*Blog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogApi.ListBlogs")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("blogs.count", len(blogs)))
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/blogs", nil)
	if err != nil {
		return nil, err
	}

	blogs = []*Blog{}
	if err := a.do(OpList, req, &blogs); err != nil {
		return nil, err
	}

	log.Debugf("blog-api: listed %d blogs", len(blogs))
	return blogs, nil
}

func (a *Api) GetBlog(ctx context.Context, id string) (_ *Blog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogApi.GetBlog")
	span.SetAttributes(attribute.String("id", id))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	blogUrl := fmt.Sprintf("%s/blogs/%s", a.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, blogUrl, nil)
	if err != nil {
		return nil, err
	}

	b := &Blog{}
	if err := a.do(OpGet, req, b); err != nil {
		return nil, err
	}

	log.Tracef("blog-api: got blog %s", id)
	return b, nil
}

// CreateBlog assigns the id (unix millis) and the date on the client side, the
// remote service stores whatever it receives.
func (a *Api) CreateBlog(ctx context.Context, input CreateInput) (_ *Blog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogApi.CreateBlog")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if input.Category == nil {
		input.Category = []string{}
	}

	now := a.now().UTC()
	body := createRequest{
		CreateInput: input,
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Date:        now.Format(isoDateLayout),
	}
	span.SetAttributes(attribute.String("id", body.ID))

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal create blog request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/blogs", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	created := &Blog{}
	if err := a.do(OpCreate, req, created); err != nil {
		return nil, err
	}

	log.Debugf("blog-api: created blog %s [%s]", created.ID, created.Title)
	return created, nil
}

func (a *Api) do(op Op, req *http.Request, target any) error {
	start := time.Now()
	status := "error"
	defer func() {
		a.observe(op, status, time.Since(start))
	}()

	log.Tracef("blog-api: %s %s", req.Method, req.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response bytes: %w", op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Debugf("blog-api: %s %s responded with %d: %s", req.Method, req.URL, resp.StatusCode, respBytes)
		return newFetchError(op, resp.StatusCode)
	}

	if err := json.Unmarshal(respBytes, target); err != nil {
		return fmt.Errorf("unmarshal %s response bytes: %w", op, err)
	}

	return nil
}

func (a *Api) observe(op Op, status string, took time.Duration) {
	if a.metrics == nil {
		return
	}
	a.metrics.CounterApiRequests.WithLabelValues(string(op), status).Inc()
	a.metrics.HistogramApiRequestDuration.WithLabelValues(string(op)).Observe(took.Seconds())
}
