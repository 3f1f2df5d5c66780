// Package http implements the HTTP transport of the places service.
//
// It wires the chi router, the request handlers and the middleware chain
// (panic recovery, trace ids, access logging and gzip compression) in front
// of the service layer. Service and geocoder errors are translated to status
// codes through a single error table.
package http
