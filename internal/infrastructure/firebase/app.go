package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"connekt/pkg/config"
	"connekt/pkg/logger"
)

// Clients holds the Google clients shared by the API server and connektctl.
type Clients struct {
	Option    option.ClientOption
	Auth      *auth.Client
	Firestore *firestore.Client
}

// CredentialsOption prefers inline service account JSON, then a file path.
// With neither set it falls back to application default credentials.
func CredentialsOption(cfg *config.Config) (option.ClientOption, error) {
	if cfg.ServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), nil
	}

	if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		return option.WithCredentialsFile(cfg.ServiceAccountPath), nil
	}

	logger.Warn("No service account configured, using application default credentials")
	return nil, nil
}

func NewClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	opt, err := CredentialsOption(cfg)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if opt != nil {
		opts = append(opts, opt)
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject, StorageBucket: cfg.StorageBucket}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase Auth: %w", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &Clients{
		Option:    opt,
		Auth:      authClient,
		Firestore: firestoreClient,
	}, nil
}

// ClientOptions returns the credential option as a slice for other Google clients.
func (c *Clients) ClientOptions() []option.ClientOption {
	if c.Option == nil {
		return nil
	}
	return []option.ClientOption{c.Option}
}

func (c *Clients) Close() error {
	return c.Firestore.Close()
}
