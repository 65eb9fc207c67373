package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretGetter is the subset of the Secrets Manager client used here.
type SecretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// NewSecretsManagerClient builds a client from the default AWS credential chain.
func NewSecretsManagerClient(ctx context.Context) (*secretsmanager.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// ResolveJWTSecret fills cfg.JWTSecret from Secrets Manager when only
// JWT_SECRET_ID was configured. A JWT_SECRET from the environment wins.
//
// The secret value may be the raw signing key or a JSON object with a
// "jwt_secret" field.
func ResolveJWTSecret(ctx context.Context, cfg *Config, client SecretGetter) error {
	if cfg.JWTSecret != "" {
		return nil
	}
	if cfg.JWTSecretID == "" {
		return ErrJWTSecretMissing
	}
	if client == nil {
		return errors.New("secrets manager client is nil")
	}

	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(cfg.JWTSecretID),
	})
	if err != nil {
		return fmt.Errorf("failed to retrieve secret %s: %w", cfg.JWTSecretID, err)
	}
	if result.SecretString == nil {
		return fmt.Errorf("secret %s has no string value", cfg.JWTSecretID)
	}

	secret, err := parseSecret(*result.SecretString)
	if err != nil {
		return fmt.Errorf("secret %s: %w", cfg.JWTSecretID, err)
	}

	cfg.JWTSecret = secret
	return nil
}

func parseSecret(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "{") {
		if raw == "" {
			return "", errors.New("empty secret")
		}
		return raw, nil
	}

	var payload struct {
		JWTSecret string `json:"jwt_secret"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", fmt.Errorf("failed to parse secret JSON: %w", err)
	}
	if payload.JWTSecret == "" {
		return "", errors.New(`secret JSON has no "jwt_secret" field`)
	}
	return payload.JWTSecret, nil
}
