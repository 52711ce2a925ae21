package googlesheets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// The source only ever reads, so every constructor requests the read-only
// spreadsheets scope.
const readScope = sheets.SpreadsheetsReadonlyScope

// ServiceAccountKey represents the structure of a service account JSON key file
type ServiceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

// NewWithJSONKeyFile creates a new Source using a JSON key file
func NewWithJSONKeyFile(ctx context.Context, config Config, jsonPath string) (*Source, error) {
	// If jsonPath is empty, try GOOGLE_APPLICATION_CREDENTIALS env var
	if jsonPath == "" {
		jsonPath = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if jsonPath == "" {
			return nil, fmt.Errorf("no JSON key file path provided and GOOGLE_APPLICATION_CREDENTIALS not set")
		}
	}

	tokenSource, err := createTokenSourceFromFile(ctx, jsonPath)
	if err != nil {
		return nil, err
	}

	return New(ctx, config, option.WithTokenSource(tokenSource))
}

// NewWithJSONKeyData creates a new Source using JSON key data
func NewWithJSONKeyData(ctx context.Context, config Config, jsonData []byte) (*Source, error) {
	tokenSource, err := createTokenSourceFromJSON(ctx, jsonData)
	if err != nil {
		return nil, err
	}

	return New(ctx, config, option.WithTokenSource(tokenSource))
}

// NewWithServiceAccountKey creates a new Source using email and private key
func NewWithServiceAccountKey(ctx context.Context, config Config, email string, privateKey string) (*Source, error) {
	tokenSource, err := createTokenSourceFromKey(ctx, &ServiceAccountKey{
		ClientEmail: email,
		PrivateKey:  privateKey,
	})
	if err != nil {
		return nil, err
	}

	return New(ctx, config, option.WithTokenSource(tokenSource))
}

// NewWithDefaultCredentials creates a new Source using Application Default
// Credentials: GOOGLE_APPLICATION_CREDENTIALS, gcloud auth
// application-default, or the GCE metadata service, in that order.
func NewWithDefaultCredentials(ctx context.Context, config Config) (*Source, error) {
	tokenSource, err := google.DefaultTokenSource(ctx, readScope)
	if err != nil {
		return nil, fmt.Errorf("failed to get default token source: %w", err)
	}

	return New(ctx, config, option.WithTokenSource(tokenSource))
}

// ParseServiceAccountJSON parses a service account JSON file or data
func ParseServiceAccountJSON(jsonData []byte) (*ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal(jsonData, &key); err != nil {
		return nil, fmt.Errorf("failed to parse service account JSON: %w", err)
	}

	if key.Type != "service_account" {
		return nil, fmt.Errorf("invalid key type: %s (expected: service_account)", key.Type)
	}

	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("missing required fields in service account key")
	}

	return &key, nil
}

// CreateTokenSource creates an oauth2.TokenSource from various credential types
func CreateTokenSource(ctx context.Context, credentials interface{}) (oauth2.TokenSource, error) {
	switch cred := credentials.(type) {
	case string:
		// Assume it's a file path
		return createTokenSourceFromFile(ctx, cred)
	case []byte:
		// JSON data
		return createTokenSourceFromJSON(ctx, cred)
	case *ServiceAccountKey:
		// Parsed service account key
		return createTokenSourceFromKey(ctx, cred)
	default:
		return nil, fmt.Errorf("unsupported credential type: %T", credentials)
	}
}

func createTokenSourceFromFile(ctx context.Context, path string) (oauth2.TokenSource, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return createTokenSourceFromJSON(ctx, jsonData)
}

func createTokenSourceFromJSON(ctx context.Context, jsonData []byte) (oauth2.TokenSource, error) {
	creds, err := google.CredentialsFromJSON(ctx, jsonData, readScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return creds.TokenSource, nil
}

func createTokenSourceFromKey(ctx context.Context, key *ServiceAccountKey) (oauth2.TokenSource, error) {
	jwtConfig := &jwt.Config{
		Email:      key.ClientEmail,
		PrivateKey: []byte(key.PrivateKey),
		Scopes:     []string{readScope},
		TokenURL:   google.JWTTokenURL,
	}
	return jwtConfig.TokenSource(ctx), nil
}
