// Package api serves the label layout and formatting helpers as a JSON
// service.
//
// The router is built with chi and every body is rendered with go-chi/render.
// Request types implement render.Binder and validate their input in Bind;
// response types implement render.Renderer. Failures are rendered as
// [ErrorResponse] with the HTTP status derived from the pkg/errors code.
//
// # Endpoints
//
//	GET  /healthz
//	GET  /version
//	POST /v1/labels/rotation   choose an axis label angle
//	POST /v1/labels/width      measure labels
//	POST /v1/labels/truncate   fit one label into a width
//	POST /v1/format/value      format a number
//	POST /v1/format/date       format a date
//	POST /v1/colors/palette    derive series colors
//	POST /v1/scale/ticks       nice ticks and their positions
//	GET  /v1/theme             the active theme
//
// Every response carries an X-Request-Id header.
package api
