// Package ports defines the driven-side interfaces of the server: the
// abstract Solid Edge kernel surface the managers are written against.
// Adapters (the in-memory fake, a COM bridge) implement these behind
// opaque handles so backends can swap without touching the managers.
package ports
