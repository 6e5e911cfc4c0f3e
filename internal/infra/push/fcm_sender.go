// Package push contains the provider-specific push transports. Each sender
// covers one token family and is isolated from the others: a sender reports
// its failures through the ProviderReport and never aborts a dispatch.
package push

import (
	"context"
	"log/slog"
	"strconv"

	"loocate/config"
	"loocate/internal/domain/entity"
	"loocate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmBatchLimit is Firebase's hard cap on tokens per multicast request.
const fcmBatchLimit = 500

type fcmSender struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFCMSender creates the Firebase Cloud Messaging transport.
func NewFCMSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{
		client: client,
		logger: logger,
	}, nil
}

// Family returns the token family this sender handles.
func (s *fcmSender) Family() entity.ProviderFamily {
	return entity.ProviderFCM
}

// Send delivers the message to all tokens, chunked to Firebase's 500-token
// multicast limit. Tokens Firebase reports as invalid or unregistered are
// collected for pruning.
func (s *fcmSender) Send(ctx context.Context, tokens []string, message *service.PushMessage) service.ProviderReport {
	report := service.ProviderReport{Family: entity.ProviderFCM}

	if len(tokens) == 0 {
		report.Status = service.StatusSkipped

		return report
	}

	for start := 0; start < len(tokens); start += fcmBatchLimit {
		end := min(start+fcmBatchLimit, len(tokens))
		chunk := tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, s.buildMulticast(chunk, message))
		if err != nil {
			s.logger.ErrorContext(ctx, "FCM multicast failed",
				slog.Int("tokens", len(chunk)),
				slog.Any("error", err))
			report.FailureCount += len(chunk)
			report.ErrorDetail = err.Error()

			continue
		}

		report.SuccessCount += response.SuccessCount
		report.FailureCount += response.FailureCount

		// Collect invalid tokens
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
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

func (s *fcmSender) buildMulticast(tokens []string, message *service.PushMessage) *messaging.MulticastMessage {
	multicast := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title:    message.Title,
			Body:     message.Body,
			ImageURL: message.ImageURL,
		},
		Data: message.Data,
		Android: &messaging.AndroidConfig{
			Priority:    "high",
			CollapseKey: message.CollapseKey,
			Notification: &messaging.AndroidNotification{
				ChannelID: message.ChannelID,
				Sound:     message.Sound,
			},
		},
	}

	if message.Badge > 0 || message.Sound != "" {
		aps := &messaging.Aps{Sound: message.Sound}
		if message.Badge > 0 {
			badge := message.Badge
			aps.Badge = &badge
		}
		multicast.APNS = &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": strconv.Itoa(10)},
			Payload: &messaging.APNSPayload{Aps: aps},
		}
	}

	return multicast
}
