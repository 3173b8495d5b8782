package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lifeverse/dm-frontend/internal/client/backend"
	"github.com/lifeverse/dm-frontend/internal/client/stream"
	"github.com/lifeverse/dm-frontend/internal/config"
	"github.com/lifeverse/dm-frontend/internal/model"
	"github.com/lifeverse/dm-frontend/internal/pkg/validator"
	"github.com/lifeverse/dm-frontend/internal/thread"
	"github.com/lifeverse/dm-frontend/internal/tokenstore"
	"github.com/lifeverse/dm-frontend/internal/tui"
)

var (
	email    = flag.String("email", "", "log in with this email (required on first run)")
	password = flag.String("password", "", "password for -email")
)

func main() {
	flag.Parse()

	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	if cfg.Character.ProfileUID == "" {
		fmt.Fprintln(os.Stderr, "DM_FRONTEND_CHARACTER_PROFILE_UID is required")
		os.Exit(1)
	}

	store, err := tokenstore.New(sessionPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open session store: %v\n", err)
		os.Exit(1)
	}

	client := backend.New(cfg, store)
	defer client.Close()
	client.OnSessionExpired(func() {
		logger.Warn("session expired, log in again")
	})

	ctx := context.Background()

	profileUID, err := ensureSession(ctx, client, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	streamClient := stream.New(cfg, store, logger)

	syncer, err := thread.New(client, streamOpener{client: streamClient}, validator.New(), logger, profileUID, cfg.Character.ProfileUID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up thread: %v\n", err)
		os.Exit(1)
	}

	if err := syncer.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start thread: %v\n", err)
		os.Exit(1)
	}
	defer syncer.Close()

	program := tea.NewProgram(tui.New(syncer, profileUID, cfg.Character.Name), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error(fmt.Sprintf("TUI failed: %v", err))
		os.Exit(1)
	}
}

// ensureSession logs in when credentials are supplied, otherwise reuses the
// persisted session. Returns the uid of the caller's chat profile.
func ensureSession(ctx context.Context, client *backend.Client, store *tokenstore.Store) (string, error) {
	if *email != "" {
		if *password == "" {
			return "", fmt.Errorf("-password is required with -email")
		}

		login, err := client.Login(ctx, *email, *password)
		if err != nil {
			return "", fmt.Errorf("login failed: %w", err)
		}

		if err := store.Set(model.TokenPair{
			AccessToken:  login.AccessToken,
			RefreshToken: login.RefreshToken,
		}); err != nil {
			return "", fmt.Errorf("failed to persist session: %w", err)
		}
	}

	if _, ok := store.Get(); !ok {
		return "", fmt.Errorf("no stored session, log in with -email and -password")
	}

	user, err := client.Me(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load account: %w", err)
	}

	profileUID, err := ensureProfile(ctx, client, user)
	if err != nil {
		return "", err
	}

	if err := store.SetIdentity(*user, profileUID); err != nil {
		return "", fmt.Errorf("failed to persist identity: %w", err)
	}

	return profileUID, nil
}

// ensureProfile picks the account's first chat profile, creating one named
// after the account when none exists yet.
func ensureProfile(ctx context.Context, client *backend.Client, user *model.User) (string, error) {
	profiles, err := client.MyProfiles(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load profiles: %w", err)
	}

	if len(profiles) > 0 {
		return profiles[0].UID, nil
	}

	profile, err := client.CreateProfile(ctx, model.ProfileCreate{Name: user.Username})
	if err != nil {
		return "", fmt.Errorf("failed to create profile: %w", err)
	}

	return profile.UID, nil
}

func sessionPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "dm-frontend", "session.json")
}

// streamOpener adapts the stream client to the synchronizer's contract.
type streamOpener struct {
	client *stream.Client
}

func (o streamOpener) Open(ctx context.Context, sourceUID, targetUID string) (thread.Subscription, error) {
	sub, err := o.client.Open(ctx, sourceUID, targetUID)
	if err != nil {
		return nil, err
	}
	return sub, nil
}
