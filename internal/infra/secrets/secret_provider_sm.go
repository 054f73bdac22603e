// internal/infra/secrets/secret_provider_sm.go
package secrets

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

var errProviderNotConfigured = errors.New("secrets: secret manager provider not configured")

// SecretProviderSM resolves secrets (e.g. the SendGrid API key) from
// Google Secret Manager.
type SecretProviderSM struct {
	SM        *secretmanager.Client
	ProjectID string
	Version   string
}

func NewSecretProviderSM(sm *secretmanager.Client, projectID string) *SecretProviderSM {
	return &SecretProviderSM{SM: sm, ProjectID: projectID, Version: "latest"}
}

// Get reads the trimmed payload of a secret version.
func (p *SecretProviderSM) Get(ctx context.Context, secretID string) (string, error) {
	if p == nil || p.SM == nil {
		return "", errProviderNotConfigured
	}
	sid := strings.TrimSpace(secretID)
	if sid == "" {
		return "", errors.New("secrets: secretID is empty")
	}
	prj := strings.TrimSpace(p.ProjectID)
	if prj == "" {
		return "", errors.New("secrets: projectID is empty")
	}
	ver := strings.TrimSpace(p.Version)
	if ver == "" {
		ver = "latest"
	}

	name := "projects/" + prj + "/secrets/" + sid + "/versions/" + ver
	resp, err := p.SM.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("secrets: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("secrets: empty payload (" + name + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
