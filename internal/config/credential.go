package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	// EnvAPIKey is the environment variable and file key holding the
	// YouTube Data API credential.
	EnvAPIKey = "YOUTUBE_API_KEY"

	credentialFileName = ".env"
	appConfigDirName   = "yt-playlist-duration"
	credentialFileMode = 0600
)

// CredentialStore loads and persists the API credential as a plain key=value
// file in the user config directory. A YOUTUBE_API_KEY environment variable
// always takes precedence over the file.
type CredentialStore struct {
	path string
}

// NewCredentialStore creates a store rooted in the OS user config directory.
func NewCredentialStore() (*CredentialStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewCredentialStoreAt(filepath.Join(configDir, appConfigDirName, credentialFileName)), nil
}

// NewCredentialStoreAt creates a store over an explicit file path. Used by
// tests.
func NewCredentialStoreAt(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

// Path returns the credential file location.
func (c *CredentialStore) Path() string {
	return c.path
}

// Load returns the API key from the environment or the credential file. An
// empty string with nil error means no credential is configured yet.
func (c *CredentialStore) Load() (string, error) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}

	env, err := godotenv.Read(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read credential file %s: %w", c.path, err)
	}

	return env[EnvAPIKey], nil
}

// Save persists the API key to the credential file, creating the parent
// directory on first use. Other keys already present in the file survive.
func (c *CredentialStore) Save(apiKey string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	env, err := godotenv.Read(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read credential file %s: %w", c.path, err)
		}
		env = map[string]string{}
	}
	env[EnvAPIKey] = apiKey

	if err := godotenv.Write(env, c.path); err != nil {
		return fmt.Errorf("write credential file %s: %w", c.path, err)
	}

	if err := os.Chmod(c.path, credentialFileMode); err != nil {
		log.Warn().Err(err).Str("path", c.path).Msg("could not restrict credential file permissions")
	}

	log.Info().Str("path", c.path).Msg("API credential saved")
	return nil
}
