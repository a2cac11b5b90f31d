// internal/infra/practicum/client.go
package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

const maxBodyInError = 512

// Client fetches homework statuses from the review API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
	now        func() time.Time
}

func NewClient(httpClient *http.Client, endpoint, token string, logger *logrus.Entry) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
		now:        time.Now,
	}
}

// FetchStatuses requests statuses changed since fromDate (Unix seconds).
// A non-positive fromDate means "now". The decoded JSON value is returned
// as is; numbers are kept as json.Number.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	if fromDate <= 0 {
		fromDate = c.now().Unix()
	}

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: bad endpoint url: %v", homework.ErrEndpointUnreachable, err)
	}
	query := reqURL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", homework.ErrEndpointUnreachable, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the full URL; keep the message stable across cycles.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: %v", homework.ErrEndpointUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", homework.ErrEndpointUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &homework.EndpointStatusError{StatusCode: resp.StatusCode, Body: truncate(body)}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", homework.ErrDecode, err)
	}
	return decoded, nil
}

func truncate(body []byte) string {
	if len(body) > maxBodyInError {
		return string(body[:maxBodyInError]) + "..."
	}
	return string(body)
}
