package listmonk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/listmonk-mcp/internal/config"
	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/metrics"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

type fakeListmonk struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
}

func (f *fakeListmonk) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
		Header: r.Header.Clone(),
	})
	f.mu.Unlock()
	f.handler(w, r)
}

func (f *fakeListmonk) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func (f *fakeListmonk) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeListmonk) {
	t.Helper()
	fake := &fakeListmonk{handler: handler}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client := NewClient(config.ListmonkConfig{
		BaseURL:    server.URL + "/",
		Username:   "api",
		APIKey:     "secret",
		TimeoutMs:  5000,
		RetryCount: 0,
	})
	t.Cleanup(client.Close)
	return client, fake
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func TestNewClientNormalizesBaseURL(t *testing.T) {
	client := NewClient(config.ListmonkConfig{
		BaseURL:   "http://listmonk.local:9000///",
		Username:  "api",
		APIKey:    "k",
		TimeoutMs: 1000,
	})
	assert.Equal(t, "http://listmonk.local:9000", client.BaseURL())
}

func TestRequestHeaders(t *testing.T) {
	client, fake := newTestClient(t, respond(`{"data": true}`))

	ctx := WithRequestID(context.Background(), "req-123")
	_, err := client.GetHealth(ctx)
	require.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/health", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "req-123", req.Header.Get(RequestIDHeader))

	r := &http.Request{Header: req.Header}
	user, pass, ok := r.BasicAuth()
	require.True(t, ok, "basic auth must be sent without a challenge")
	assert.Equal(t, "api", user)
	assert.Equal(t, "secret", pass)
}

func TestGetSubscribers(t *testing.T) {
	client, fake := newTestClient(t, respond(`{
		"data": {
			"results": [{"id": 1, "email": "jo@example.com", "name": "Jo", "status": "enabled",
				"lists": [{"id": 3, "name": "news", "subscription_status": "confirmed"}]}],
			"query": "",
			"total": 1,
			"per_page": 20,
			"page": 1
		}
	}`))

	listID := 3
	page, err := client.GetSubscribers(context.Background(), domain.SubscriberQuery{
		PageQuery: domain.PageQuery{Page: 2, PerPage: 50, Query: "name = 'Jo'"},
		ListID:    &listID,
		Status:    domain.SubscriberBlocklisted,
	})
	require.NoError(t, err)

	require.Len(t, page.Results, 1)
	assert.Equal(t, "jo@example.com", page.Results[0].Email)
	assert.Equal(t, domain.SubscriptionConfirmed, page.Results[0].Lists[0].SubscriptionStatus)
	assert.Equal(t, 1, page.Total)

	req := fake.last(t)
	assert.Equal(t, "/api/subscribers", req.Path)
	assert.Contains(t, req.Query, "page=2")
	assert.Contains(t, req.Query, "per_page=50")
	assert.Contains(t, req.Query, "list_id=3")
	assert.Contains(t, req.Query, "status=blocklisted")
	assert.Contains(t, req.Query, "query=name+%3D+%27Jo%27")
}

func TestGetSubscribersDefaultsPaging(t *testing.T) {
	client, fake := newTestClient(t, respond(`{"data":{"results":[],"total":0,"per_page":20,"page":1}}`))

	_, err := client.GetSubscribers(context.Background(), domain.SubscriberQuery{})
	require.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, "page=1&per_page=20", req.Query)
}

func TestCreateSubscriberBody(t *testing.T) {
	client, fake := newTestClient(t, respond(`{"data":{"id":9,"email":"a@b.co","name":"A","status":"enabled"}}`))

	sub, err := client.CreateSubscriber(context.Background(), domain.CreateSubscriberRequest{
		Email:  "a@b.co",
		Name:   "A",
		Status: domain.SubscriberEnabled,
		Lists:  []int{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 9, sub.ID)

	req := fake.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.JSONEq(t, `{"email":"a@b.co","name":"A","status":"enabled","lists":[1,2]}`, req.Body)
}

func TestDeleteIgnoresBody(t *testing.T) {
	client, fake := newTestClient(t, respond(`not json at all`))

	require.NoError(t, client.DeleteSubscriber(context.Background(), 42))
	require.NoError(t, client.DeleteList(context.Background(), 5))
	require.NoError(t, client.DeleteCampaign(context.Background(), 6))
	require.NoError(t, client.DeleteTemplate(context.Background(), 7))

	assert.Equal(t, 4, fake.count())
	req := fake.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/templates/7", req.Path)
}

func TestAPIErrorCarriesBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Subscriber not found"}`)
	})

	_, err := client.GetSubscriber(context.Background(), 404)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "/api/subscribers/404", apiErr.Path)
	assert.Contains(t, err.Error(), "Subscriber not found")
}

func TestDecodeErrorCarriesRawBody(t *testing.T) {
	client, _ := newTestClient(t, respond(`{"data": {"id": "not-a-number"}}`))

	_, err := client.GetSubscriber(context.Background(), 1)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Contains(t, decodeErr.Body, `"not-a-number"`)
	assert.Contains(t, err.Error(), "JSON: ")
}

func TestNetworkErrorIsWrapped(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(config.ListmonkConfig{BaseURL: url, Username: "api", APIKey: "k", TimeoutMs: 1000})
	_, err := client.GetHealth(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestTimeoutBoundsRetries(t *testing.T) {
	fake := &fakeListmonk{handler: func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client := NewClient(config.ListmonkConfig{
		BaseURL:    server.URL,
		Username:   "api",
		APIKey:     "k",
		TimeoutMs:  200,
		RetryCount: 3,
	})
	t.Cleanup(client.Close)

	start := time.Now()
	_, err := client.GetHealth(context.Background())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 600*time.Millisecond)
	assert.LessOrEqual(t, fake.count(), 2)
}

func TestUpdateCampaignStatus(t *testing.T) {
	client, fake := newTestClient(t, respond(`{"data":{"id":7,"name":"c","subject":"s","status":"scheduled"}}`))

	camp, err := client.UpdateCampaignStatus(context.Background(), 7, domain.CampaignScheduled)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignScheduled, camp.Status)

	req := fake.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/campaigns/7/status", req.Path)
	assert.JSONEq(t, `{"status":"scheduled"}`, req.Body)
}

func TestGetCampaignAnalytics(t *testing.T) {
	client, fake := newTestClient(t, respond(`{"data":[{"campaign_id":7,"count":12,"timestamp":"2024-07-24T00:00:00Z"}]}`))

	points, err := client.GetCampaignAnalytics(context.Background(), domain.AnalyticsQuery{
		CampaignID: 7,
		Type:       domain.AnalyticsViews,
		From:       "2024-07-01",
	})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 12, points[0].Count)

	req := fake.last(t)
	assert.Equal(t, "/api/campaigns/analytics/views", req.Path)
	assert.Equal(t, "from=2024-07-01&id=7", req.Query)
}

func TestGetTemplatePreviewReturnsRawBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<h1>Hello</h1>")
	})

	html, err := client.GetTemplatePreview(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello</h1>", html)
}

func TestSetDefaultTemplateKeepsPayload(t *testing.T) {
	client, fake := newTestClient(t, respond(`{"data":[{"id":3,"name":"Default","is_default":true}]}`))

	raw, err := client.SetDefaultTemplate(context.Background(), 3)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":3,"name":"Default","is_default":true}]`, string(raw))
	assert.Equal(t, "/api/templates/3/default", fake.last(t).Path)
}

func TestGetMediaAcceptsBothShapes(t *testing.T) {
	t.Run("page", func(t *testing.T) {
		client, _ := newTestClient(t, respond(`{"data":{"results":[{"id":1,"filename":"a.png"}],"total":1,"per_page":20,"page":1}}`))
		page, err := client.GetMedia(context.Background(), domain.PageQuery{})
		require.NoError(t, err)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "a.png", page.Results[0].Filename)
	})

	t.Run("array", func(t *testing.T) {
		client, _ := newTestClient(t, respond(`{"data":[{"id":1,"filename":"a.png"},{"id":2,"filename":"b.png"}]}`))
		page, err := client.GetMedia(context.Background(), domain.PageQuery{})
		require.NoError(t, err)
		assert.Len(t, page.Results, 2)
		assert.Equal(t, 2, page.Total)
	})
}

func TestSendTransactional(t *testing.T) {
	client, fake := newTestClient(t, respond(`{"data": true}`))

	ok, err := client.SendTransactional(context.Background(), domain.TransactionalMessageRequest{
		SubscriberEmail: "jo@example.com",
		TemplateName:    "welcome",
		Data:            map[string]any{"code": "X1"},
		Messenger:       domain.DefaultMessenger,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(fake.last(t).Body), &body))
	assert.Equal(t, "jo@example.com", body["subscriber_email"])
	assert.Equal(t, "welcome", body["template_name"])
	assert.Equal(t, "email", body["messenger"])
	assert.NotContains(t, body, "template_id")
	assert.NotContains(t, body, "subscriber_id")
}

func TestGetDashboardCounts(t *testing.T) {
	client, fake := newTestClient(t, respond(`{"data":{"subscribers":{"total":10,"blocklisted":1,"orphans":2},
		"lists":{"total":3,"private":1,"public":2,"optin_single":2,"optin_double":1},
		"campaigns":{"total":4,"by_status":{"draft":3,"finished":1}},"messages":99}}`))

	counts, err := client.GetDashboardCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, counts.Subscribers.Total)
	assert.Equal(t, 3, counts.Campaigns.ByStatus["draft"])
	assert.Equal(t, 99, counts.Messages)
	assert.Equal(t, "/api/dashboard/counts", fake.last(t).Path)
}

func TestClientRecordsMetrics(t *testing.T) {
	client, _ := newTestClient(t, respond(`{"data": true}`))
	collector := metrics.NewCollector("test")
	client.SetMetrics(collector)

	_, err := client.GetHealth(context.Background())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `test_remote_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestCloseIsIdempotent(t *testing.T) {
	client, _ := newTestClient(t, respond(`{"data": true}`))
	assert.NotPanics(t, func() {
		client.Close()
		client.Close()
	})
}
