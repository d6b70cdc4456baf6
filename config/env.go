// Package config loads application settings from a .env file merged over
// built-in defaults. Values are resolved once and cached for the process
// lifetime; accessors are safe for concurrent use.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ErrMissingJWTSecret is returned by Load when the process runs in
// production without a real token-signing secret. Tokens signed with the
// built-in development default would be forgeable by anyone.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET must be set in production")

const (
	defaultMongoURI  = "mongodb://localhost:27017"
	defaultMongoDB   = "bistroBoss"
	defaultRedisAddr = "localhost:6379"
	defaultJWTSecret = "change-me-in-production"
	defaultAppPort   = "5000"
	defaultAppEnv    = "local"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads .env from the working directory. Missing files are not an
// error; defaults and real environment variables still apply. In production
// the signing secret is mandatory: Load fails with ErrMissingJWTSecret
// rather than letting the server sign tokens with the development default.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFile(".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"MONGO_URI":         defaultMongoURI,
		"MONGO_DB":          defaultMongoDB,
		"REDIS_ADDR":        defaultRedisAddr,
		"REDIS_PASSWORD":    "",
		"JWT_SECRET":        defaultJWTSecret,
		"STRIPE_SECRET_KEY": "",
		"APP_PORT":          defaultAppPort,
		"APP_ENV":           defaultAppEnv,
		"LOG_MONGO":         "false",
	}
}

func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", defaultMongoURI)
}

func MongoDB() string {
	_ = Load()
	return get("MONGO_DB", defaultMongoDB)
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

func StripeSecretKey() string {
	_ = Load()
	return get("STRIPE_SECRET_KEY", "")
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// LogToMongo reports whether the async MongoDB log sink should be enabled.
func LogToMongo() bool {
	_ = Load()
	return get("LOG_MONGO", "false") == "true"
}

func loadFromFile(envPath string) error {
	loaded := defaultValues()

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	// Real environment variables win over .env entries.
	for key := range loaded {
		if v, ok := os.LookupEnv(key); ok {
			loaded[key] = strings.TrimSpace(v)
		}
	}

	if err := checkProductionSecrets(loaded); err != nil {
		return err
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

// checkProductionSecrets rejects a production environment whose signing
// secret is absent or still the built-in default.
func checkProductionSecrets(values map[string]string) error {
	env := strings.TrimSpace(values["APP_ENV"])
	if env != "production" && env != "prod" {
		return nil
	}

	secret := strings.TrimSpace(values["JWT_SECRET"])
	if secret == "" || secret == defaultJWTSecret {
		return ErrMissingJWTSecret
	}
	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return get(key, fallback)
}
