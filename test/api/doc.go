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

// Package api provides integration test utilities for the PetFriends API.
//
// Suites live in the suites subpackage and run against the service named
// by PETFRIENDS_BASE_URL, they are skipped when it is unset.
//
// The live service does not always honour its documentation, it accepts
// an empty pet name for example.  PETFRIENDS_EXPECTATIONS selects which
// behaviour the affected specs assert:
//   - observed (the default) keeps the assertions the suite was written
//     with, which record what the service returned at the time.
//   - strict asserts the documented contract, which is also what the
//     in-memory fake in pkg/fakeserver implements.
package api
