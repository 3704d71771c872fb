// Package api implements the HTTP client for the pyHSS provisioning REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/openepc/hssctl"
)

// HTTPClient talks to the pyHSS provisioning API using net/http.
// It implements hssctl.ProvisioningAPI.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	debug      *hssctl.DebugLogger
}

// NewHTTPClient creates a new provisioning API client.
// apiKey is optional; if empty, no Provisioning-Key header is sent.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout == 0 {
		timeout = hssctl.DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithHTTPClient sets a custom http.Client (for testing or custom timeouts).
func (c *HTTPClient) WithHTTPClient(client *http.Client) *HTTPClient {
	c.httpClient = client
	return c
}

// WithDebugLogger attaches a debug logger for request/response tracing.
func (c *HTTPClient) WithDebugLogger(logger *hssctl.DebugLogger) *HTTPClient {
	c.debug = logger
	return c
}

func (c *HTTPClient) setHeaders(req *http.Request, requestID string) {
	if c.apiKey != "" {
		req.Header.Set("Provisioning-Key", c.apiKey)
	}
	req.Header.Set("User-Agent", "hssctl/1.0")
	req.Header.Set("X-Request-ID", requestID)
}

// do performs one request and decodes a 2xx JSON response into out (unless nil).
// Non-2xx statuses become *hssctl.RemoteError; network failures become
// *hssctl.TransportError.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, payload, out any) error {
	var body io.Reader
	var rawBody []byte
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		rawBody = data
		body = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	requestID := ulid.Make().String()
	c.setHeaders(req, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.debug.LogRequest(requestID, method, reqURL, rawBody)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		terr := &hssctl.TransportError{Operation: op, Err: err}
		c.debug.LogError(op, terr)
		return terr
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(resp.Body)
	c.debug.LogResponse(requestID, resp.StatusCode, respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRemoteError(op, resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}

	return nil
}

func newRemoteError(op string, statusCode int, body []byte) *hssctl.RemoteError {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return &hssctl.RemoteError{
		Operation:  op,
		StatusCode: statusCode,
		Body:       msg,
	}
}

// checkDeleteResult flags a 2xx delete whose body reports a failure.
// An empty body is treated as success; some deployments omit it.
func checkDeleteResult(op string, result DeleteResult) error {
	if result.Result != "" && !result.OK() {
		return fmt.Errorf("%s: service reported %q", op, result.Result)
	}
	return nil
}

func pageQuery(page hssctl.Page) url.Values {
	query := url.Values{}
	if page.Size > 0 {
		query.Set("page_size", strconv.Itoa(page.Size))
	}
	if page.Number > 0 {
		query.Set("page", strconv.Itoa(page.Number))
	}
	return query
}

// ListSubscribers retrieves subscribers via GET /subscriber.
func (c *HTTPClient) ListSubscribers(ctx context.Context, page hssctl.Page) ([]hssctl.Subscriber, error) {
	var subscribers []hssctl.Subscriber
	if err := c.do(ctx, "list_subscribers", http.MethodGet, "/subscriber", pageQuery(page), nil, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

// GetSubscriber retrieves a single subscriber via GET /subscriber/{imsi}.
func (c *HTTPClient) GetSubscriber(ctx context.Context, imsi string) (*hssctl.Subscriber, error) {
	var subscriber hssctl.Subscriber
	path := "/subscriber/" + url.PathEscape(imsi)
	if err := c.do(ctx, "get_subscriber", http.MethodGet, path, nil, nil, &subscriber); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// CreateSubscriber provisions a subscriber via POST /subscriber.
func (c *HTTPClient) CreateSubscriber(ctx context.Context, sub hssctl.Subscriber) (*hssctl.Subscriber, error) {
	req := CreateSubscriberRequest{
		IMSI:       sub.IMSI,
		Ki:         sub.Ki,
		OPc:        sub.OPc,
		MSISDN:     sub.MSISDN,
		DefaultAPN: sub.DefaultAPN,
		APNs:       sub.APNs,
	}
	// The API treats a missing apn field as null; always send a list.
	if req.APNs == nil {
		req.APNs = []string{}
	}

	var created hssctl.Subscriber
	if err := c.do(ctx, "create_subscriber", http.MethodPost, "/subscriber", nil, &req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteSubscriber removes a subscriber via DELETE /subscriber/{imsi}.
func (c *HTTPClient) DeleteSubscriber(ctx context.Context, imsi string) error {
	path := "/subscriber/" + url.PathEscape(imsi)
	var result DeleteResult
	if err := c.do(ctx, "delete_subscriber", http.MethodDelete, path, nil, nil, &result); err != nil {
		return err
	}
	return checkDeleteResult("delete_subscriber", result)
}

// ListAPNs retrieves all APNs via GET /apn.
func (c *HTTPClient) ListAPNs(ctx context.Context) ([]hssctl.APN, error) {
	var apns []hssctl.APN
	if err := c.do(ctx, "list_apns", http.MethodGet, "/apn", nil, nil, &apns); err != nil {
		return nil, err
	}
	return apns, nil
}

// CreateAPN provisions an APN via POST /apn.
func (c *HTTPClient) CreateAPN(ctx context.Context, apn hssctl.APN) (*hssctl.APN, error) {
	req := CreateAPNRequest{
		Name:                    apn.Name,
		AMBRDownlink:            apn.AMBRDownlink,
		AMBRUplink:              apn.AMBRUplink,
		QCI:                     apn.QCI,
		ARPPriority:             apn.ARPPriority,
		PreemptionCapability:    apn.PreemptionCapability,
		PreemptionVulnerability: apn.PreemptionVulnerability,
	}

	var created hssctl.APN
	if err := c.do(ctx, "create_apn", http.MethodPost, "/apn", nil, &req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteAPN removes an APN via DELETE /apn/{name}.
func (c *HTTPClient) DeleteAPN(ctx context.Context, name string) error {
	path := "/apn/" + url.PathEscape(name)
	var result DeleteResult
	if err := c.do(ctx, "delete_apn", http.MethodDelete, path, nil, nil, &result); err != nil {
		return err
	}
	return checkDeleteResult("delete_apn", result)
}

// ListIMSSubscribers retrieves IMS subscribers via GET /ims_subscriber.
func (c *HTTPClient) ListIMSSubscribers(ctx context.Context, page hssctl.Page) ([]hssctl.IMSSubscriber, error) {
	var subscribers []hssctl.IMSSubscriber
	if err := c.do(ctx, "list_ims_subscribers", http.MethodGet, "/ims_subscriber", pageQuery(page), nil, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

// CreateIMSSubscriber provisions an IMS subscriber via POST /ims_subscriber.
func (c *HTTPClient) CreateIMSSubscriber(ctx context.Context, sub hssctl.IMSSubscriber) (*hssctl.IMSSubscriber, error) {
	req := CreateIMSSubscriberRequest{
		IMSI:       sub.IMSI,
		MSISDN:     sub.MSISDN,
		MSISDNList: sub.MSISDNList,
	}
	if req.MSISDNList == nil {
		req.MSISDNList = []string{}
	}

	var created hssctl.IMSSubscriber
	if err := c.do(ctx, "create_ims_subscriber", http.MethodPost, "/ims_subscriber", nil, &req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteIMSSubscriber removes an IMS subscriber via DELETE /ims_subscriber/{imsi}.
func (c *HTTPClient) DeleteIMSSubscriber(ctx context.Context, imsi string) error {
	path := "/ims_subscriber/" + url.PathEscape(imsi)
	var result DeleteResult
	if err := c.do(ctx, "delete_ims_subscriber", http.MethodDelete, path, nil, nil, &result); err != nil {
		return err
	}
	return checkDeleteResult("delete_ims_subscriber", result)
}
