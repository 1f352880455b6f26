// Package http is the HTTP surface of the service.
//
// Routes have no prefix. Everything except registration, login, health and the
// OpenAPI document requires a bearer session token; the websocket hub also accepts the
// token as the access_token query parameter because browsers cannot set headers on a
// websocket handshake.
//
// Failures are rendered by ErrorHandler as {"error":{"code":...,"message":...}}.
package http
