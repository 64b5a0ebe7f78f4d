// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// stripeErrorBody is the error envelope of the Stripe API.
type stripeErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), providerMessage(resp.Body()))
}

func mapStatus(status int, message string) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	if message == "" {
		message = http.StatusText(status)
	}

	switch {
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrGatewayUnavailable, status, message)
	case status >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrGatewayRejected, status, message)
	default:
		return fmt.Errorf("%w: unexpected http %d", ErrGatewayUnavailable, status)
	}
}

func providerMessage(body []byte) string {
	var envelope stripeErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(body))
}
