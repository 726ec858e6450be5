// Package api exposes the inventory service over HTTP using Echo.
//
// Routes are grouped under /api and protected by JWT bearer auth except
// for /api/auth/login, /health and /metrics. User management routes
// additionally require the admin role. Storage errors are translated to
// HTTP status codes in one place (httpError) so handlers stay thin.
package api
