// Package notifying emits human-readable events about rotations and queue
// health. Delivery is fire-and-forget: a failing sink never affects the
// operation that produced the event.
package notifying

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Kind string

const (
	KindRotationCompleted Kind = "rotation_completed"
	KindRotationFailed    Kind = "rotation_failed"
	KindQueueReplenished  Kind = "queue_replenished"
	KindQueueLow          Kind = "queue_low"
)

// Notification is a closed union: every kind has a fixed payload shape
// built by the constructors below.
type Notification struct {
	Kind           Kind      `json:"kind"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	RecipientClass string    `json:"recipient_class"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func RotationCompleted(rotationType domain.RotationType, previousName, nextName string) Notification {
	message := "Now featuring " + nextName
	if previousName != "" {
		message = previousName + " rotated out; now featuring " + nextName
	}
	return Notification{
		Kind:           KindRotationCompleted,
		Title:          "Featured rotation (" + string(rotationType) + ")",
		Message:        message,
		RecipientClass: "admins",
		OccurredAt:     time.Now(),
	}
}

func RotationFailed(rotationType domain.RotationType, reason string) Notification {
	return Notification{
		Kind:           KindRotationFailed,
		Title:          "Rotation failed (" + string(rotationType) + ")",
		Message:        reason,
		RecipientClass: "admins",
		OccurredAt:     time.Now(),
	}
}

func QueueReplenished(added, requested int) Notification {
	return Notification{
		Kind:           KindQueueReplenished,
		Title:          "Queue replenished",
		Message:        fmt.Sprintf("Added %d of %d requested candidates", added, requested),
		RecipientClass: "admins",
		OccurredAt:     time.Now(),
	}
}

func QueueLow(pending, target int) Notification {
	return Notification{
		Kind:           KindQueueLow,
		Title:          "Rotation queue below target",
		Message:        fmt.Sprintf("%d pending entries, target is %d", pending, target),
		RecipientClass: "admins",
		OccurredAt:     time.Now(),
	}
}

type Notifier interface {
	Notify(notification Notification)
}

type Service struct {
	webhookURL string
	httpClient *http.Client
}

func NewService(cfg *config.Config) *Service {
	timeout := time.Duration(cfg.Notification.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Service{
		webhookURL: cfg.Notification.WebhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *Service) Notify(notification Notification) {
	logrus.WithFields(logrus.Fields{
		"kind":       notification.Kind,
		"title":      notification.Title,
		"recipients": notification.RecipientClass,
	}).Info(notification.Message)

	if s.webhookURL == "" {
		return
	}

	go s.postWebhook(notification)
}

func (s *Service) postWebhook(notification Notification) {
	body, err := json.Marshal(notification)
	if err != nil {
		logrus.WithError(err).Error("Could not encode notification")
		return
	}

	resp, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Warn("Notification webhook unreachable")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logrus.WithField("status", resp.StatusCode).Warn("Notification webhook rejected event")
	}
}

