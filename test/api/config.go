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

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Expectations selects how anomalous service behaviour is asserted.
type Expectations string

const (
	// ExpectObserved asserts what the live service actually returns.
	ExpectObserved Expectations = "observed"
	// ExpectStrict asserts the documented contract.
	ExpectStrict Expectations = "strict"
)

var (
	// ErrInvalidExpectations is raised for an unknown PETFRIENDS_EXPECTATIONS value.
	ErrInvalidExpectations = errors.New("invalid expectations mode")
)

type TestConfig struct {
	BaseURL         string
	ValidEmail      string
	ValidPassword   string
	InvalidEmail    string
	InvalidPassword string
	Expectations    Expectations
	RequestTimeout  time.Duration
	LogRequests     bool
	LogResponses    bool
}

// Enabled is true when there is a service to test against.
func (c *TestConfig) Enabled() bool {
	return c.BaseURL != ""
}

// Strict is true when asserting the documented contract.
func (c *TestConfig) Strict() bool {
	return c.Expectations == ExpectStrict
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Credentials are only required once a base URL is set.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:         os.Getenv("PETFRIENDS_BASE_URL"),
		ValidEmail:      os.Getenv("PETFRIENDS_VALID_EMAIL"),
		ValidPassword:   os.Getenv("PETFRIENDS_VALID_PASSWORD"),
		InvalidEmail:    getWithDefault("PETFRIENDS_INVALID_EMAIL", "invalid@example.com"),
		InvalidPassword: getWithDefault("PETFRIENDS_INVALID_PASSWORD", "not-the-password"),
		Expectations:    Expectations(strings.ToLower(getWithDefault("PETFRIENDS_EXPECTATIONS", string(ExpectObserved)))),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.Expectations != ExpectObserved && config.Expectations != ExpectStrict {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExpectations, config.Expectations)
	}

	if !config.Enabled() {
		return config, nil
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

func getWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/petfriends
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// Not an error, CI sets the environment directly.
		return
	}

	// Variables already in the environment win.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"PETFRIENDS_VALID_EMAIL", config.ValidEmail},
		{"PETFRIENDS_VALID_PASSWORD", config.ValidPassword},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(missing, ", "))
	}

	return nil
}
