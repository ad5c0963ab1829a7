// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as session resolution, request tracing,
// access logging, and response compression are handled in this package before
// requests are delegated to the service layer.
//
// Authentication endpoints accept form posts and answer with redirects, the
// way a browser form submission expects; everything else speaks JSON. Errors
// are rendered uniformly as {"code","message"} bodies by errors_mapper.go.
package http
