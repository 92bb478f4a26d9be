// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors written by the middleware of this package.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingWebhookHeaders is returned when a webhook delivery lacks one
	// of the svix-id, svix-timestamp and svix-signature headers.
	ErrMissingWebhookHeaders = errors.New("missing webhook signature headers")

	// ErrWebhookDisabled is returned when no webhook secret is configured.
	ErrWebhookDisabled = errors.New("webhook is not configured")

	errInvalidJSON = errors.New("invalid JSON was passed")
)
