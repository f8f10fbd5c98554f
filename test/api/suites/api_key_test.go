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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// credential names the credential a spec gets wrong.
type credential int

const (
	wrongEmail credential = iota
	wrongPassword
)

var _ = Describe("API Keys", func() {
	Context("When requesting a key", func() {
		Describe("Given valid credentials", func() {
			It("should return a key", func() {
				result, err := client.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusOK))
				Expect(result.JSON).To(BeTrue())
				Expect(result.Body.Key).NotTo(BeEmpty())
			})

			It("should return the same key on every request", func() {
				result, err := client.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Body.Key).To(Equal(key))
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should not return a key",
				func(wrong credential) {
					email, password := config.ValidEmail, config.ValidPassword

					switch wrong {
					case wrongEmail:
						email = config.InvalidEmail
					case wrongPassword:
						password = config.InvalidPassword
					}

					result, err := client.GetAPIKey(ctx, email, password)
					Expect(err).NotTo(HaveOccurred())

					if config.Strict() {
						expectClientError(result.StatusCode)
						Expect(result.Body.Key).To(BeEmpty())

						return
					}

					Expect(result.StatusCode).To(Equal(http.StatusOK))
					Expect(result.Body.Key).NotTo(BeEmpty())
				},
				Entry("with an unknown email", wrongEmail),
				Entry("with a wrong password", wrongPassword),
			)
		})
	})
})
