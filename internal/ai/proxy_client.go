package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ProxyClient talks to an external chat proxy that accepts
// {message, persona, tone} and answers {reply}.
type ProxyClient struct {
	url    string
	client *http.Client
}

func NewProxyClient(url string) *ProxyClient {
	return &ProxyClient{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type proxyRequest struct {
	Message string `json:"message"`
	Persona string `json:"persona"`
	Tone    string `json:"tone"`
}

type proxyResponse struct {
	Reply string `json:"reply"`
}

// GetReply sends only the latest message; the proxy keeps no transcript.
func (c *ProxyClient) GetReply(ctx context.Context, p Prompt) (string, error) {
	b, err := json.Marshal(proxyRequest{Message: p.Message, Persona: p.Persona, Tone: p.Tone})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return "", errors.Wrap(err, "ai proxy request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ai proxy call")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", errors.Errorf("ai proxy error: %s body=%s", resp.Status, body)
	}

	var out proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "ai proxy decode")
	}

	reply := strings.TrimSpace(out.Reply)
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}
