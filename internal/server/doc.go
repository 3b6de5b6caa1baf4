// Package server exposes the array summation as a small JSON HTTP API with
// Prometheus metrics, health checking, security headers and graceful
// shutdown. It is activated by the --serve flag and otherwise never started.
package server
