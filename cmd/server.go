package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/segmentio/analytics-go/v3"

	"github.com/sitepress/sitepress-backend/api"
	"github.com/sitepress/sitepress-backend/dto"
	"github.com/sitepress/sitepress-backend/infra"
	"github.com/sitepress/sitepress-backend/repositories"
	"github.com/sitepress/sitepress-backend/repositories/idp"
	"github.com/sitepress/sitepress-backend/usecases"
	"github.com/sitepress/sitepress-backend/utils"
)

func RunServer(config CompiledConfig) error {
	apiConfig := api.Configuration{
		Env:                    utils.GetEnv("ENV", "development"),
		AppName:                "sitepress-backend",
		AppVersion:             config.Version,
		Port:                   utils.GetRequiredEnv[string]("PORT"),
		AppUrl:                 utils.GetEnv("APP_URL", ""),
		PublicApiUrl:           utils.GetEnv("PUBLIC_API_URL", ""),
		RequestLoggingLevel:    utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		DefaultTimeout:         time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
		LoginAttemptsPerMinute: utils.GetEnv("LOGIN_ATTEMPTS_PER_MINUTE", 5),
		EnablePrometheus:       utils.GetEnv("ENABLE_PROMETHEUS", false),
	}
	pgConfig := readPgConfig()
	tracingConfig := infra.TelemetryConfiguration{
		ApplicationName: apiConfig.AppName,
		Enabled:         utils.GetEnv("ENABLE_TRACING", false),
		ProjectID:       utils.GetEnv("GOOGLE_CLOUD_PROJECT", ""),
		Exporter:        utils.GetEnv("TRACING_EXPORTER", "otlp"),
		SamplingRate:    utils.GetEnv("TRACING_SAMPLING_RATE", infra.DEFAULT_SAMPLING_RATE),
	}
	firebaseConfig := infra.FirebaseConfig{
		ProjectId:    utils.GetEnv("FIREBASE_PROJECT_ID", tracingConfig.ProjectID),
		EmulatorHost: utils.GetEnv("FIREBASE_AUTH_EMULATOR_HOST", ""),
	}
	serverConfig := ServerConfig{
		jwtSigningKey:     utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		jwtSigningKeyFile: utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY_FILE", ""),
		loggingFormat:     utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:         utils.GetEnv("SENTRY_DSN", ""),
		segmentWriteKey:   utils.GetEnv("SEGMENT_WRITE_KEY", config.SegmentWriteKey),
		uploadsBucketUrl:  utils.GetEnv("UPLOADS_BUCKET_URL", ""),
		authProvider:      utils.GetEnv("AUTH_PROVIDER", authProviderLocal),
		allowSignup:       utils.GetEnv("ALLOW_SIGNUP", false),
		tokenLifetimeMin:  utils.GetEnv("TOKEN_LIFETIME_MINUTE", 60*2),
		createAdminEmail:  utils.GetEnv("CREATE_ADMIN_EMAIL", ""),
		createAdminPass:   utils.GetEnv("CREATE_ADMIN_PASSWORD", ""),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := serverConfig.Validate(); err != nil {
		logger.ErrorContext(ctx, "invalid server configuration", slog.String("error", err.Error()))
		return err
	}

	signingKey := infra.ReadParseOrGenerateSigningKey(ctx, serverConfig.jwtSigningKey, serverConfig.jwtSigningKeyFile)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, config.Version)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(tracingConfig, config.Version)
	if err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "error initializing tracing"))
		telemetryRessources = infra.NoopTelemetry()
	}
	defer func() { _ = telemetryRessources.Shutdown(context.Background()) }()

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	repoOptions := []repositories.Option{
		repositories.WithUploadsBucketUrl(serverConfig.uploadsBucketUrl),
	}
	if serverConfig.authProvider == authProviderFirebase {
		firebaseClient := infra.InitializeFirebase(ctx, firebaseConfig)
		repoOptions = append(repoOptions, repositories.WithIdpTokenRepository(
			idp.NewFirebaseClient(firebaseConfig.ProjectId, firebaseClient)))
	}
	repos := repositories.NewRepositories(pool, signingKey, repoOptions...)

	uc := usecases.NewUsecases(repos,
		usecases.WithAppUrl(apiConfig.AppUrl),
		usecases.WithPublicApiUrl(apiConfig.PublicApiUrl),
		usecases.WithTokenLifetime(time.Duration(serverConfig.tokenLifetimeMin)*time.Minute),
		usecases.WithAllowSignup(serverConfig.allowSignup),
	)

	////////////////////////////////////////////////////////////
	// Seed the database
	////////////////////////////////////////////////////////////
	if serverConfig.createAdminEmail != "" {
		seedUsecase := uc.NewSeedUseCase()
		if err := seedUsecase.SeedAdminUser(ctx, serverConfig.createAdminEmail, serverConfig.createAdminPass); err != nil {
			utils.LogAndReportSentryError(ctx, err)
			return err
		}
	}

	var segmentClient analytics.Client
	if serverConfig.segmentWriteKey != "" {
		segmentClient = analytics.New(serverConfig.segmentWriteKey)
		defer segmentClient.Close()
	}

	dto.RegisterValidators()

	router := api.InitRouterMiddlewares(ctx, apiConfig, segmentClient, telemetryRessources)
	utils.SetupProfilerEndpoints(ctx, router, apiConfig.AppName, config.Version, tracingConfig.ProjectID)

	sessionUsecase := uc.NewSessionUsecase()
	server := api.NewServer(router, apiConfig, uc, utils.NewAuthentication(&sessionUsecase))

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server",
			slog.String("version", config.Version),
			slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	logger.InfoContext(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while shutting down the server"))
		return err
	}

	return nil
}
