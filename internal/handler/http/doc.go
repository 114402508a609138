// Package http implements the REST transport of the bus finder.
//
// It wires the routes, decodes JSON and form bodies, maps service errors to
// status codes and messages, and applies the cross-cutting middleware:
// panic recovery, CORS, request tracing, access logging and gzip. When a
// static directory is configured the front-end bundle is served from it.
package http
