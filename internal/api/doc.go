// Package api handles incoming HTTP requests for the reference catalog:
// the JSON endpoints under /api and the HTML reference page. It translates
// HTTP concerns to catalog service operations and maps service errors to
// status codes and safe messages.
package api
