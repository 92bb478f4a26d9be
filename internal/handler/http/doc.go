// Package http implements the REST transport of the fin360 server.
//
// Routes are served by chi. Every /api route except the version probe and
// the identity provider webhook requires a bearer JWT; the authenticated
// user id is put into the request context for the handlers. Request
// tracing, access logging and gzip compression are applied to every route.
package http
