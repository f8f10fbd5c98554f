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
package client

import (
	"encoding/json"
	"net/http"
)

// Result is the outcome of one exchange with the service.  Any status
// code is a result, errors are reserved for failures on our side.
type Result[T any] struct {
	// StatusCode is the HTTP status.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the decoded response, the zero value unless JSON is set.
	Body T
	// JSON is true when the response body decoded into Body.
	JSON bool
	// Text is the raw response body.
	Text string
}

func newResult[T any](resp *http.Response, body []byte) *Result[T] {
	result := &Result[T]{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Text:       string(body),
	}

	var decoded T

	if err := json.Unmarshal(body, &decoded); err == nil {
		result.Body = decoded
		result.JSON = true
	}

	return result
}
