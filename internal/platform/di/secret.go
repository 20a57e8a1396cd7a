// internal/platform/di/secret.go
package di

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// accessSecret reads the latest version of projects/<projectID>/secrets/<name>.
func accessSecret(ctx context.Context, sm *secretmanager.Client, projectID, name string) (string, error) {
	if sm == nil {
		return "", errors.New("di: secretmanager client is nil")
	}
	prj := strings.TrimSpace(projectID)
	sec := strings.TrimSpace(name)
	if prj == "" || sec == "" {
		return "", errors.New("di: secret name/project is empty")
	}

	fullName := "projects/" + prj + "/secrets/" + sec + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: fullName})
	if err != nil {
		return "", errors.New("di: AccessSecretVersion failed (" + fullName + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("di: empty secret payload (" + fullName + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
