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
	"github.com/petfriends-qa/apitests/pkg/client"
)

// NewAPIClientWithConfig creates a client for the configured service.
func NewAPIClientWithConfig(config *TestConfig) (*client.Client, error) {
	return client.New(config.BaseURL,
		client.WithTimeout(config.RequestTimeout),
		client.WithUserAgent("petfriends-apitests/suites"),
		client.WithRequestLogging(config.LogRequests),
		client.WithResponseLogging(config.LogResponses),
	)
}
