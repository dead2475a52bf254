// Package deskapi exposes the desk catalogue, message preview, and PDF
// generation over HTTP. The component is self-contained and mountable on
// any mux that accepts net/http handlers.
package deskapi
