// Package tenantsdk is a small client library for the tenant service. It
// holds the wire types the service speaks plus a typed HTTP client, so other
// Go services (and our own end-to-end tests) don't hand-roll requests.
package tenantsdk
