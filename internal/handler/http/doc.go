// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of course-plus.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, CORS,
// response compression, and the bearer-token and role guards are handled in
// this package before requests are delegated to the service layer.
//
// Every resource handler performs exactly one service call and relays the
// result as JSON. Failures are translated to status codes by
// [statusFromError].
package http
