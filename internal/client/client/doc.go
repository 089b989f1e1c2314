// Package client contains client-side building blocks for nutritrack.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the nutritrack backend: Login/Register/Logout/Refresh, Profile,
//     meal and workout logs, the daily summary and Ping.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that decodes
//     the server's response envelope and maps error codes to the sentinel
//     errors of the common package.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations),
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures (refused connections, timeouts, unreadable bodies)
// wrap common.ErrNetwork. Server error codes come back as their common
// counterparts: VALIDATION_ERROR as *common.ValidationError, AUTH_ERROR and
// EMAIL_TAKEN as *common.AuthError, TOKEN_EXPIRED as common.ErrTokenExpired,
// NOT_FOUND as common.ErrorNotFound and the rest as common.ErrUnexpected.
//
// Every call accepts a context.Context and honors cancellation.
package client
