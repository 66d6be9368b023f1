package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"applyflow/internal/completion"
	"applyflow/internal/domain/identity"
	"applyflow/internal/pkg/logger"
)

var (
	ErrUnauthorized = errors.New("profile api rejected the token")
	ErrNoProfile    = errors.New("no profile for this candidate")
)

// FetchResult is the profile collaborator's answer. When the server already
// computed completeness, ProfileCompleted carries its verdict and callers
// trust it instead of re-deriving locally.
type FetchResult struct {
	Candidate        completion.Record
	ProfileCompleted *bool
	MissingFields    []string
}

type Client interface {
	Fetch(ctx context.Context, ident identity.Identity) (FetchResult, error)
	Update(ctx context.Context, ident identity.Identity, payload map[string]any) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger
}

type fetchResponse struct {
	Candidate        map[string]any `json:"candidate"`
	ProfileCompleted *bool          `json:"profileCompleted"`
	MissingFields    []string       `json:"missingFields"`
}

func NewHTTPClient(baseURL string, timeout time.Duration, log *logger.Logger) (Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("empty profile api base url")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}, nil
}

func (c *httpClient) Fetch(ctx context.Context, ident identity.Identity) (FetchResult, error) {
	if c == nil || c.client == nil {
		return FetchResult{}, errors.New("nil profile client")
	}
	endpoint := c.baseURL + "/profile"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return FetchResult{}, err
	}
	c.setIdentityHeaders(req, ident)

	resp, err := c.client.Do(req)
	if err != nil {
		return FetchResult{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, endpoint, c.logger); err != nil {
		return FetchResult{}, err
	}

	var out fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return FetchResult{}, err
	}

	return FetchResult{
		Candidate:        completion.Record(out.Candidate),
		ProfileCompleted: out.ProfileCompleted,
		MissingFields:    out.MissingFields,
	}, nil
}

func (c *httpClient) Update(ctx context.Context, ident identity.Identity, payload map[string]any) error {
	if c == nil || c.client == nil {
		return errors.New("nil profile client")
	}
	endpoint := c.baseURL + "/profile"

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setIdentityHeaders(req, ident)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp, endpoint, c.logger)
}

func (c *httpClient) setIdentityHeaders(req *http.Request, ident identity.Identity) {
	if ident.Token != "" {
		req.Header.Set("Authorization", "Bearer "+ident.Token)
	}
	if ident.Email != "" {
		req.Header.Set("X-User-Email", ident.Email)
	}
}

func checkStatus(resp *http.Response, endpoint string, log *logger.Logger) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	body := strings.TrimSpace(string(rb))
	log.Warn("profile api call failed", "endpoint", endpoint, "status", resp.StatusCode, "body", body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNoProfile
	default:
		return fmt.Errorf("profile api failed: status=%d body=%s", resp.StatusCode, body)
	}
}

var _ Client = (*httpClient)(nil)
