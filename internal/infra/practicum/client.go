package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

const defaultTimeout = 30 * time.Second

// Client polls the homework status API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Poll asks for homework updates since cursor and validates the answer.
// It performs exactly one request; retrying is left to the caller.
func (c *Client) Poll(ctx context.Context, cursor homework.Cursor) (homework.PollResult, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return homework.PollResult{}, &homework.Error{Kind: homework.KindTransport, Msg: "parse endpoint", Err: err}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(int64(cursor), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return homework.PollResult{}, &homework.Error{Kind: homework.KindTransport, Msg: "create request", Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return homework.PollResult{}, &homework.Error{Kind: homework.KindTransport, Msg: "request homework statuses", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return homework.PollResult{}, &homework.Error{Kind: homework.KindUnexpectedStatus, StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return homework.PollResult{}, &homework.Error{Kind: homework.KindMalformedResponse, Msg: "decode response", Err: err}
	}

	res, err := homework.Validate(raw)
	if err != nil {
		return homework.PollResult{}, fmt.Errorf("validate response: %w", err)
	}
	return res, nil
}
