// Package operator sends SMS through a carrier HTTP gateway. The gateway
// accepts a JSON POST with bearer authentication; every Mongolian operator
// gateway in use exposes this shape.
package operator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Boldmaa4421/raffle-app/internal/config"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

type sender struct {
	client *http.Client
	apiURL string
	apiKey string
	from   string
}

// NewSender creates an SmsSender backed by the configured carrier gateway.
func NewSender(cfg *config.SMSConfig) port.SmsSender {
	return &sender{
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		from:   cfg.Sender,
	}
}

type gatewayRequest struct {
	To     string `json:"to"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

func (s *sender) Send(ctx context.Context, toE164, text string) port.SendResult {
	body, err := json.Marshal(gatewayRequest{To: toE164, Text: text, Sender: s.from})
	if err != nil {
		return port.SendResult{OK: false, Error: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return port.SendResult{OK: false, Error: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return port.SendResult{OK: false, Error: fmt.Sprintf("gateway: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("operatorSender.Send: gateway returned %d for %s", resp.StatusCode, toE164)
		return port.SendResult{
			OK:         false,
			StatusCode: resp.StatusCode,
			Error:      fmt.Sprintf("gateway status %d: %s", resp.StatusCode, string(snippet)),
		}
	}
	return port.SendResult{OK: true, StatusCode: resp.StatusCode}
}
