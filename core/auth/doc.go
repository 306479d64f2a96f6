// Package auth abstracts bearer token acquisition for the external APIs.
//
// Tokens are opaque inputs to the sync core: a TokenProvider hands out one
// token per system, and the core learns a token is bad only when an API
// answers with a 401-class response, surfaced as *auth.Error.
//
// Two providers are included:
//   - StaticProvider: tokens supplied directly via configuration.
//   - ScriptProvider: tokens printed by an external helper script, matching
//     existing operational practice where short-lived tokens are minted by
//     shell tooling.
package auth
