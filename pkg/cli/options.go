/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/petfriends-qa/apitests/pkg/client"
)

var (
	// ErrMissingCredentials is raised when neither a key nor an email and
	// password pair is available.
	ErrMissingCredentials = errors.New("either --key or --email and --password are required")
)

// Options are the global flags shared by all commands.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
	Email    string
	Password string
	Key      string
}

func getenv(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}

	return fallback
}

func getenvDuration(name string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(name)); err == nil {
		return value
	}

	return fallback
}

// AddFlags registers the global flags, defaults are read from the environment.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", getenv("PETFRIENDS_BASE_URL", "https://petfriends.skillfactory.ru"), "Service base URL.")
	f.DurationVar(&o.Timeout, "timeout", getenvDuration("REQUEST_TIMEOUT", client.DefaultTimeout), "Request timeout.")
	f.StringVar(&o.LogLevel, "log-level", getenv("PETFRIENDS_LOG_LEVEL", "info"), "Log level, debug also logs requests and responses.")
	f.StringVar(&o.Email, "email", getenv("PETFRIENDS_VALID_EMAIL", ""), "Account email.")
	f.StringVar(&o.Password, "password", getenv("PETFRIENDS_VALID_PASSWORD", ""), "Account password.")
	f.StringVar(&o.Key, "key", getenv("PETFRIENDS_KEY", ""), "Auth key, skips the key exchange.")
}

func (o *Options) level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(o.LogLevel)
	if err != nil {
		return level, fmt.Errorf("parsing log level: %w", err)
	}

	return level, nil
}

// Logger builds a zap backed logger writing to stderr.
func (o *Options) Logger() (logr.Logger, error) {
	level, err := o.level()
	if err != nil {
		return logr.Discard(), err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("building logger: %w", err)
	}

	return zapr.NewLogger(logger), nil
}

// ClientOptions maps the global flags onto client options.
func (o *Options) ClientOptions() []client.Option {
	debug := false

	if level, err := o.level(); err == nil {
		debug = level <= zapcore.DebugLevel
	}

	return []client.Option{
		client.WithTimeout(o.Timeout),
		client.WithRequestLogging(debug),
		client.WithResponseLogging(debug),
	}
}
