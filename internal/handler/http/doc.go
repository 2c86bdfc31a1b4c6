// Package http implements the HTTP transport layer of the server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API: authentication, notes, todos, the reminder dispatcher trigger, the
// version endpoint and Prometheus metrics. Cross-cutting concerns such as
// bearer-token authentication, request tracing, access logging, metrics and
// CORS are handled here before requests reach the service layer.
package http
