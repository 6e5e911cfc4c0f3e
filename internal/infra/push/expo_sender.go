package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"loocate/config"
	"loocate/internal/domain/entity"
	"loocate/internal/domain/service"

	"github.com/pkg/errors"
)

// expoBatchLimit is Expo's recommended cap on messages per request.
const expoBatchLimit = 100

// expoMessage mirrors the Expo push API request schema.
type expoMessage struct {
	To        []string          `json:"to"`
	Title     string            `json:"title,omitempty"`
	Body      string            `json:"body,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Sound     string            `json:"sound,omitempty"`
	Badge     int               `json:"badge,omitempty"`
	ChannelID string            `json:"channelId,omitempty"`
	Priority  string            `json:"priority,omitempty"`
}

// expoResponse mirrors the Expo push API response schema. Tickets come back
// in the same order as the tokens in the request.
type expoResponse struct {
	Data []struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
		Details struct {
			Error string `json:"error,omitempty"`
		} `json:"details,omitempty"`
	} `json:"data"`
}

// expoSender implements service.PushSender over Expo's HTTP push API.
// Multiple endpoints are tried in priority order so a regional outage or a
// proxy failure degrades to the next endpoint instead of dropping the batch.
type expoSender struct {
	endpoints   []string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewExpoSender creates the Expo push transport.
func NewExpoSender(cfg *config.Config, logger *slog.Logger) service.PushSender {
	timeout := cfg.Expo.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &expoSender{
		endpoints:   cfg.Expo.Endpoints,
		accessToken: cfg.Expo.AccessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Family returns the token family this sender handles.
func (s *expoSender) Family() entity.ProviderFamily {
	return entity.ProviderExpo
}

// Send delivers the message to all tokens in chunks of 100. Each chunk walks
// the endpoint chain until one accepts it; tokens Expo reports as
// DeviceNotRegistered are collected for pruning.
func (s *expoSender) Send(ctx context.Context, tokens []string, message *service.PushMessage) service.ProviderReport {
	report := service.ProviderReport{Family: entity.ProviderExpo}

	if len(tokens) == 0 {
		report.Status = service.StatusSkipped

		return report
	}

	if len(s.endpoints) == 0 {
		report.FailureCount = len(tokens)
		report.Status = service.StatusFailed
		report.ErrorDetail = "no Expo endpoints configured"

		return report
	}

	for start := 0; start < len(tokens); start += expoBatchLimit {
		end := min(start+expoBatchLimit, len(tokens))
		chunk := tokens[start:end]

		response, err := s.sendChunk(ctx, chunk, message)
		if err != nil {
			s.logger.ErrorContext(ctx, "Expo push failed on all endpoints",
				slog.Int("tokens", len(chunk)),
				slog.Any("error", err))
			report.FailureCount += len(chunk)
			report.ErrorDetail = err.Error()

			continue
		}

		for idx, ticket := range response.Data {
			if idx >= len(chunk) {
				break
			}
			if ticket.Status == "ok" {
				report.SuccessCount++

				continue
			}
			report.FailureCount++
			if ticket.Details.Error == "DeviceNotRegistered" {
				report.InvalidTokens = append(report.InvalidTokens, chunk[idx])
			}
		}
	}

	if report.SuccessCount > 0 {
		report.Status = service.StatusSent
	} else {
		report.Status = service.StatusFailed
	}

	return report
}

// sendChunk posts one batch, falling through the endpoint chain in order.
// The first endpoint that returns a parseable 2xx response wins.
func (s *expoSender) sendChunk(ctx context.Context, tokens []string, message *service.PushMessage) (*expoResponse, error) {
	body, err := json.Marshal(expoMessage{
		To:        tokens,
		Title:     message.Title,
		Body:      message.Body,
		Data:      message.Data,
		Sound:     message.Sound,
		Badge:     message.Badge,
		ChannelID: message.ChannelID,
		Priority:  "high",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var lastErr error
	for _, endpoint := range s.endpoints {
		response, err := s.post(ctx, endpoint, body)
		if err != nil {
			s.logger.WarnContext(ctx, "Expo endpoint failed, trying next",
				slog.String("endpoint", endpoint),
				slog.Any("error", err))
			lastErr = err

			continue
		}

		return response, nil
	}

	return nil, errors.Wrap(lastErr, "all Expo endpoints failed")
}

func (s *expoSender) post(ctx context.Context, endpoint string, body []byte) (*expoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, errors.Errorf("expo endpoint returned non-success status: %d", resp.StatusCode)
	}

	var response expoResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "failed to decode Expo response")
	}

	return &response, nil
}
