// Package http implements the REST boundary of the forum.
//
// It wires routes and middleware, decodes request bodies, resolves the
// caller identity from bearer tokens, and renders every outcome in the
// {success, message, data} envelope. Service failures are translated to
// status codes by the table in errors_mapper.go.
package http
