package cmd

import (
	"github.com/cockroachdb/errors"

	"github.com/sitepress/sitepress-backend/infra"
	"github.com/sitepress/sitepress-backend/utils"
)

type CompiledConfig struct {
	Version         string
	SegmentWriteKey string
}

const (
	authProviderLocal    = "local"
	authProviderFirebase = "firebase"
)

type ServerConfig struct {
	jwtSigningKey     string
	jwtSigningKeyFile string
	loggingFormat     string
	sentryDsn         string
	segmentWriteKey   string
	uploadsBucketUrl  string
	authProvider      string
	allowSignup       bool
	tokenLifetimeMin  int
	createAdminEmail  string
	createAdminPass   string
}

func (config ServerConfig) Validate() error {
	if config.authProvider != authProviderLocal && config.authProvider != authProviderFirebase {
		return errors.Newf("AUTH_PROVIDER must be %q or %q, got %q",
			authProviderLocal, authProviderFirebase, config.authProvider)
	}
	if config.tokenLifetimeMin <= 0 {
		return errors.New("TOKEN_LIFETIME_MINUTE must be positive")
	}
	if (config.createAdminEmail == "") != (config.createAdminPass == "") {
		return errors.New("CREATE_ADMIN_EMAIL and CREATE_ADMIN_PASSWORD must be set together")
	}
	return nil
}

func readPgConfig() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:    utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:            utils.GetEnv("PG_DATABASE", "sitepress"),
		DbConnectWithSocket: utils.GetEnv("PG_CONNECT_WITH_SOCKET", false),
		Hostname:            utils.GetEnv("PG_HOSTNAME", "localhost"),
		Password:            utils.GetEnv("PG_PASSWORD", ""),
		Port:                utils.GetEnv("PG_PORT", "5432"),
		User:                utils.GetEnv("PG_USER", "postgres"),
		MaxPoolConnections:  utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:             utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}
