package infra

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/cockroachdb/errors"
)

func InitializeFirebase(ctx context.Context, cfg FirebaseConfig) *auth.Client {
	if cfg.IsEmulator() {
		// the admin sdk reads the emulator address from the environment
		_ = os.Setenv("FIREBASE_AUTH_EMULATOR_HOST", cfg.EmulatorHost)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectId})
	if err != nil {
		panic(errors.Wrap(err, "error initializing app"))
	}

	client, err := app.Auth(ctx)
	if err != nil {
		panic(errors.Wrap(err, "error getting Auth client"))
	}

	return client
}
