package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	webhookPath = "/webhook/telegram"

	defaultTunnelAttempts = 10
	defaultTunnelWait     = 3 * time.Second
)

var errNoTunnel = errors.New("ngrok has no active tunnels")

type tunnelList struct {
	Tunnels []tunnel `json:"tunnels"`
}

type tunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// tunnelFinder polls the local ngrok API until a public tunnel shows up.
type tunnelFinder struct {
	apiBase  string
	client   *http.Client
	attempts int
	wait     time.Duration
}

func newTunnelFinder(apiBase string) tunnelFinder {
	return tunnelFinder{
		apiBase:  strings.TrimRight(apiBase, "/"),
		client:   &http.Client{Timeout: 5 * time.Second},
		attempts: defaultTunnelAttempts,
		wait:     defaultTunnelWait,
	}
}

// webhookURL returns the public Telegram webhook URL served through the tunnel.
func (f tunnelFinder) webhookURL(ctx context.Context) (string, error) {
	base, err := f.publicURL(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + webhookPath, nil
}

func (f tunnelFinder) publicURL(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= f.attempts; attempt++ {
		u, err := f.lookup(ctx)
		if err == nil {
			return u, nil
		}
		lastErr = err

		if attempt == f.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.wait):
		}
	}
	return "", fmt.Errorf("no ngrok tunnel after %d attempts: %w", f.attempts, lastErr)
}

func (f tunnelFinder) lookup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiBase+"/api/tunnels", nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ngrok API returned %d", resp.StatusCode)
	}

	var list tunnelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	// Telegram only accepts https webhooks.
	for _, t := range list.Tunnels {
		if t.Proto == "https" && t.PublicURL != "" {
			return t.PublicURL, nil
		}
	}
	return "", errNoTunnel
}
