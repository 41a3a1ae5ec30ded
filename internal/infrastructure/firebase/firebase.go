package firebase

import (
	"context"
	"fmt"
	"os"

	"b2b-showcase-backend/internal/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Clients bundles the Firebase Admin SDK handles the application needs:
// Firestore for the catalog collections, Auth for ID-token verification.
type Clients struct {
	App       *firebase.App
	Firestore *firestore.Client
	Auth      *auth.Client
}

// NewClients khởi tạo Firebase Admin SDK.
// Credentials resolve in order: explicit file from config, then
// application default credentials (GOOGLE_APPLICATION_CREDENTIALS).
func NewClients(ctx context.Context, cfg config.FirebaseConfig) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err == nil {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	return &Clients{
		App:       app,
		Firestore: fs,
		Auth:      authClient,
	}, nil
}

func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
