package xclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dghubble/oauth1"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/interfaces"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/infra/upstream"
	"github.com/secmon-lab/repobridge/pkg/utils/safe"
)

const defaultEndpoint = "https://api.twitter.com/2/tweets"

// MaxStatusLength is the posting platform's hard limit per status.
const MaxStatusLength = 280

const (
	truncateAt     = 275
	truncationMark = "..."
)

// Credentials is the four-part OAuth1 credential set for the posting
// platform. All four parts are required together.
type Credentials struct {
	APIKey       types.XAPIKey
	APISecret    types.XAPISecret
	AccessToken  types.XAccessToken
	AccessSecret types.XAccessSecret
}

func (x Credentials) validate() error {
	if x.APIKey == "" || x.APISecret == "" || x.AccessToken == "" || x.AccessSecret == "" {
		return goerr.Wrap(types.ErrInvalidOption, "X credentials must be set together (api key, api secret, access token, access secret)")
	}
	return nil
}

type Client struct {
	httpClient *http.Client
	endpoint   string
}

var _ interfaces.XPoster = (*Client)(nil)

type Option func(*Client)

// WithEndpoint redirects the post endpoint, mainly for tests.
func WithEndpoint(endpoint string) Option {
	return func(x *Client) {
		x.endpoint = endpoint
	}
}

func New(creds Credentials, options ...Option) (*Client, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}

	cfg := oauth1.NewConfig(string(creds.APIKey), string(creds.APISecret))
	token := oauth1.NewToken(string(creds.AccessToken), string(creds.AccessSecret))

	client := &Client{
		httpClient: cfg.Client(oauth1.NoContext, token),
		endpoint:   defaultEndpoint,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// Truncate enforces the platform's status length limit: anything over
// MaxStatusLength characters is cut to 275 characters plus a 3-character
// marker; shorter statuses pass through unchanged.
func Truncate(status string) string {
	runes := []rune(status)
	if len(runes) <= MaxStatusLength {
		return status
	}
	return string(runes[:truncateAt]) + truncationMark
}

type postRequest struct {
	Text string `json:"text"`
}

type postResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

type errorResponse struct {
	Detail string `json:"detail"`
	Title  string `json:"title"`
}

func (x *Client) CreatePost(ctx context.Context, status string) (*model.Post, error) {
	text := Truncate(status)

	payload, err := json.Marshal(postRequest{Text: text})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode post payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build post request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call posting platform")
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		detail := upstreamDetail(resp.Body)
		if classified := upstream.Classify(upstream.KindX, resp.StatusCode, detail); classified != nil {
			return nil, goerr.Wrap(classified, "failed to create post")
		}
		return nil, goerr.New("unexpected response from posting platform",
			goerr.V("status", resp.StatusCode),
			goerr.V("detail", detail),
		)
	}

	var body postResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, goerr.Wrap(err, "failed to decode post response")
	}

	return &model.Post{
		ID:        body.Data.ID,
		Text:      body.Data.Text,
		Truncated: text != status,
	}, nil
}

func upstreamDetail(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return string(raw)
}
