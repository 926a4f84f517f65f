package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"connekt/internal/adapter/repository"
	domainrepo "connekt/internal/domain/repository"
	"connekt/internal/infrastructure/firebase"
	"connekt/internal/usecase"
	"connekt/pkg/config"
	"connekt/pkg/logger"
)

// app is built once per invocation in PersistentPreRunE.
type app struct {
	cfg        *config.Config
	clients    *firebase.Clients
	auth       *firebase.FirebaseAuthClient
	accounts   domainrepo.AccountRepository
	profiles   *usecase.ProfileUseCase
	ratings    *usecase.RatingUseCase
	analytics  *usecase.ProAnalyticsUseCase
	reputation *usecase.ReputationUseCase
}

var current *app

var rootCmd = &cobra.Command{
	Use:          "connektctl",
	Short:        "Operator tools for the Connekt profile service",
	Long:         "connektctl recomputes cached rating aggregates and prints analytics reports straight from Firestore.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.clients.Close()
		}
	},
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return nil, err
	}

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		return nil, err
	}

	profileRepo := repository.NewFirestoreProfileRepository(clients.Firestore)
	accountRepo := repository.NewFirestoreAccountRepository(clients.Firestore)
	ratingRepo := repository.NewFirestoreRatingRepository(clients.Firestore)
	log := logger.L()

	profiles := usecase.NewProfileUseCase(
		profileRepo,
		accountRepo,
		repository.NewFirestoreHandleRepository(clients.Firestore),
		ratingRepo,
		log,
	)

	return &app{
		cfg:      cfg,
		clients:  clients,
		auth:     firebase.NewFirebaseAuthClient(clients.Auth),
		accounts: accountRepo,
		profiles: profiles,
		ratings:  usecase.NewRatingUseCase(ratingRepo, profileRepo, profiles, log),
		analytics: usecase.NewProAnalyticsUseCase(
			repository.NewFirestoreProjectRepository(clients.Firestore),
			repository.NewFirestoreTaskRepository(clients.Firestore),
			profileRepo,
			profiles,
			log,
		),
		reputation: usecase.NewReputationUseCase(profiles, log),
	}, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(
		recomputeRatingsCmd,
		initProfileCmd,
		reputationCmd,
		productivityCmd,
		workspaceAnalyticsCmd,
		devTokenCmd,
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
