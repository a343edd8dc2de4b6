// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	importData     = pflag.Bool("import", false, "Imports region and event data from the CSV files in ./data and exits")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
)

// Auth holds the signing secret and token lifetime, loaded once at
// startup and passed by reference. Never log the secret.
type Auth struct {
	Secret   []byte
	TokenTTL time.Duration
}

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// ImportRequested reports whether the --import flag was passed.
func ImportRequested() bool {
	return *importData
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")

	v.BindEnv("database.path", "database_path")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.expiry_minutes", "jwt_expiry_minutes")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)

	v.SetDefault("database.path", "games.db")

	v.SetDefault("jwt.expiry_minutes", 60)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("database.path") == "" {
		return errors.New("database path can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetInt("jwt.expiry_minutes") <= 0 {
		return errors.New("jwt.expiry_minutes must be bigger than 0")
	}

	return nil
}

// AuthFromViper builds the auth config after Setup has run.
func AuthFromViper() *Auth {
	return &Auth{
		Secret:   []byte(v.GetString("jwt.secret")),
		TokenTTL: time.Duration(v.GetInt("jwt.expiry_minutes")) * time.Minute,
	}
}
