// Package http implements the REST transport of the gift catalog.
//
// It wires the chi router, the product and member handlers and the
// middleware chain. Request tracing, access logging, compression, role
// checks and rate limiting happen here before requests are delegated to the
// service layer.
package http
