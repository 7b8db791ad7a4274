// Package session holds the per-document construction state that survives
// between stateless tool calls: the single open sketch, the revolution axis,
// and the ordered list of accumulated profiles awaiting a feature call.
//
// One Session guards the whole surface with a single mutex. Tool calls from
// concurrent callers are serialized here; interleaving two logical workflows
// against one document would otherwise corrupt the accumulated-profile order.
package session
