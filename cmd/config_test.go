package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{authProvider: authProviderLocal, tokenLifetimeMin: 120}
	assert.NoError(t, valid.Validate())

	firebase := valid
	firebase.authProvider = authProviderFirebase
	assert.NoError(t, firebase.Validate())

	unknownProvider := valid
	unknownProvider.authProvider = "okta"
	assert.ErrorContains(t, unknownProvider.Validate(), "AUTH_PROVIDER")

	noLifetime := valid
	noLifetime.tokenLifetimeMin = 0
	assert.Error(t, noLifetime.Validate())

	halfSeed := valid
	halfSeed.createAdminEmail = "admin@example.com"
	assert.ErrorContains(t, halfSeed.Validate(), "CREATE_ADMIN_PASSWORD")
}

func TestReadPgConfig(t *testing.T) {
	t.Setenv("PG_CONNECTION_STRING", "")
	t.Setenv("PG_HOSTNAME", "db.internal")
	t.Setenv("PG_PORT", "6543")
	t.Setenv("PG_MAX_POOL_SIZE", "7")

	cfg := readPgConfig()
	assert.Equal(t, "db.internal", cfg.Hostname)
	assert.Equal(t, "6543", cfg.Port)
	assert.Equal(t, 7, cfg.MaxPoolConnections)
	assert.Equal(t, "sitepress", cfg.Database)
}
