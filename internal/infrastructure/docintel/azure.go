package docintel

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	defaultAPIVersion = "2024-11-30"
	readModel         = "prebuilt-read"
	defaultPollEvery  = time.Second
	defaultMaxPolls   = 60
)

// Azure calls the Document Intelligence prebuilt-read model.
type Azure struct {
	http       *resty.Client
	endpoint   string
	apiVersion string

	PollEvery time.Duration
	MaxPolls  int
}

func NewAzure(endpoint, apiKey, apiVersion string) *Azure {
	if apiVersion = strings.TrimSpace(apiVersion); apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return &Azure{
		http: resty.New().
			SetTimeout(30*time.Second).
			SetHeader("Ocp-Apim-Subscription-Key", strings.TrimSpace(apiKey)),
		endpoint:   strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		apiVersion: apiVersion,
		PollEvery:  defaultPollEvery,
		MaxPolls:   defaultMaxPolls,
	}
}

func (a *Azure) analyzeURL() string {
	return fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		a.endpoint, readModel, url.QueryEscape(a.apiVersion))
}

func (a *Azure) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty document")
	}

	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Post(a.analyzeURL())
	if err != nil {
		return "", fmt.Errorf("analyze %s: %w", filename, err)
	}
	if resp.StatusCode() != 202 {
		return "", fmt.Errorf("analyze %s: status %d: %s", filename, resp.StatusCode(),
			gjson.Get(resp.String(), "error.message").String())
	}

	op := resp.Header().Get("Operation-Location")
	if op == "" {
		return "", errors.New("analyze: missing Operation-Location header")
	}
	return a.poll(ctx, op)
}

func (a *Azure) poll(ctx context.Context, op string) (string, error) {
	ticker := time.NewTicker(a.PollEvery)
	defer ticker.Stop()

	for i := 0; i < a.MaxPolls; i++ {
		resp, err := a.http.R().SetContext(ctx).Get(op)
		if err != nil {
			return "", fmt.Errorf("poll analyze result: %w", err)
		}
		if resp.IsError() {
			return "", fmt.Errorf("poll analyze result: status %d", resp.StatusCode())
		}

		body := resp.String()
		switch gjson.Get(body, "status").String() {
		case "succeeded":
			return strings.TrimSpace(gjson.Get(body, "analyzeResult.content").String()), nil
		case "failed", "canceled":
			return "", fmt.Errorf("analyze %s: %s", gjson.Get(body, "status").String(),
				gjson.Get(body, "error.message").String())
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
	return "", errors.New("analyze: timed out waiting for result")
}
