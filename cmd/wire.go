package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bnema/techsillies-cli/internal/adapters/api/httpapi"
	chainstore "github.com/bnema/techsillies-cli/internal/adapters/credentials/chain"
	filestore "github.com/bnema/techsillies-cli/internal/adapters/credentials/file"
	"github.com/bnema/techsillies-cli/internal/adapters/realtime/ws"
	tomlrepo "github.com/bnema/techsillies-cli/internal/adapters/repo/toml"
	"github.com/bnema/techsillies-cli/internal/application"
	"github.com/bnema/techsillies-cli/internal/config"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/bnema/techsillies-cli/internal/version"
	"github.com/sirupsen/logrus"
)

type app struct {
	cfg         config.Config
	log         *logrus.Logger
	credentials ports.CredentialStore
	client      *httpapi.Client

	store         *application.SessionStore
	sessions      *application.SessionService
	feed          *application.FeedController
	connections   *application.ConnectionService
	referrals     *application.ReferralService
	chat          *application.ChatService
	notifications *application.NotificationService

	now func() time.Time
}

func wireApp(logOut io.Writer) (*app, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, err := config.Load(config.LoadOptions{WorkDir: workDir})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	credentials, err := newCredentialStore(cfg)
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewRepository(cfg.Viper)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	sessionKey := domain.SessionCredentialKey(cfg.APIBaseURL)
	client := &httpapi.Client{
		BaseURL:        cfg.APIBaseURL,
		HTTPClient:     http.DefaultClient,
		Credentials:    credentials,
		CookieName:     httpapi.DefaultCookieName,
		UserAgent:      "tsl/" + version.Version,
		RequestTimeout: cfg.APITimeout,
		Logger:         log,
	}
	dialer := &ws.Dialer{
		URL:         cfg.RealtimeURL,
		BaseURL:     cfg.APIBaseURL,
		Credentials: credentials,
		CookieName:  httpapi.DefaultCookieName,
		Logger:      log,
	}

	clock := ports.SystemClock{}
	store := application.NewSessionStore(repo, credentials, sessionKey, log)

	return &app{
		cfg:           cfg,
		log:           log,
		credentials:   credentials,
		client:        client,
		store:         store,
		sessions:      application.NewSessionService(client, store, credentials, sessionKey, clock, log),
		feed:          application.NewFeedController(client, store, application.FeedOptions{PageSize: cfg.FeedPageSize, RemoveOnAction: cfg.FeedRemoveOnAction}, log),
		connections:   application.NewConnectionService(client, store, log),
		referrals:     application.NewReferralService(client, domain.DefaultLinkPolicy, log),
		chat:          application.NewChatService(client, dialer, store, clock, application.ChatOptions{SendRate: cfg.ChatSendRate}, log),
		notifications: application.NewNotificationService(client, dialer, credentials, domain.PushTokenKey(cfg.APIBaseURL), log),
		now:           time.Now,
	}, nil
}

func newCredentialStore(cfg config.Config) (ports.CredentialStore, error) {
	if cfg.CredentialsBackend == config.BackendFile {
		return filestore.NewStore(cfg.CredentialsDir), nil
	}

	store, err := chainstore.NewPassFirstWithFileFallback(cfg.CredentialsDir)
	if err != nil {
		return nil, fmt.Errorf("wire credential store chain: %w", err)
	}
	return store, nil
}
