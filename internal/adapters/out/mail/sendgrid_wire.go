package mail

import (
	"context"
	"fmt"
	"log"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// ResolveSendGridAPIKey returns the SendGrid API key: the env-provided
// value when set, otherwise the latest version of the named Secret
// Manager secret. sm may be nil (env-only deployments).
func ResolveSendGridAPIKey(ctx context.Context, envKey string, sm *secretmanager.Client, projectID, secretName string) (string, error) {
	if k := strings.TrimSpace(envKey); k != "" {
		return k, nil
	}
	if sm == nil {
		return "", fmt.Errorf("sendgrid: no API key in env and no secret manager client")
	}

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretName)
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("sendgrid: access secret %s: %w", secretName, err)
	}

	key := strings.TrimSpace(string(resp.GetPayload().GetData()))
	if key == "" {
		return "", fmt.Errorf("sendgrid: secret %s is empty", secretName)
	}
	log.Printf("[mail] SendGrid API key resolved from Secret Manager (%s)", secretName)
	return key, nil
}

// NewNewsletterMailerWithSendGrid wires a NewsletterMailer over SendGrid.
// from must be a verified sender address.
func NewNewsletterMailerWithSendGrid(apiKey, from string) *NewsletterMailer {
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[mail] WARN: SendGrid API key is empty. Newsletter broadcasts will fail to send.")
	}
	if strings.TrimSpace(from) == "" {
		log.Printf("[mail] WARN: SENDGRID_FROM is empty. Newsletter broadcasts will fail to send.")
	}
	return NewNewsletterMailer(NewSendGridClient(apiKey), from)
}
