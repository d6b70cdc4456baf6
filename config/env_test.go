package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productionValues(env, secret string) map[string]string {
	values := defaultValues()
	values["APP_ENV"] = env
	values["JWT_SECRET"] = secret
	return values
}

func TestProductionRequiresRealJWTSecret(t *testing.T) {
	for _, env := range []string{"production", "prod"} {
		err := checkProductionSecrets(productionValues(env, ""))
		assert.ErrorIsf(t, err, ErrMissingJWTSecret, "env %q, empty secret", env)

		err = checkProductionSecrets(productionValues(env, defaultJWTSecret))
		assert.ErrorIsf(t, err, ErrMissingJWTSecret, "env %q, default secret", env)

		err = checkProductionSecrets(productionValues(env, "   "))
		assert.ErrorIsf(t, err, ErrMissingJWTSecret, "env %q, blank secret", env)
	}
}

func TestProductionAcceptsConfiguredSecret(t *testing.T) {
	err := checkProductionSecrets(productionValues("production", "a-real-signing-secret"))
	assert.NoError(t, err)
}

func TestDevelopmentToleratesDefaultSecret(t *testing.T) {
	for _, env := range []string{"local", "dev", "testing", ""} {
		err := checkProductionSecrets(productionValues(env, defaultJWTSecret))
		require.NoErrorf(t, err, "env %q", env)
	}
}
