// Package align computes horizontal offsets for the clusters of each
// super-cluster and resolves the connector segments drawn between them.
//
// # Offsets
//
// Every cluster is a row of equally sized cards. Within a super-cluster the
// first cluster sits at offset 0. Each following cluster is shifted so that
// the first linked item pair between it and its predecessor (the anchor)
// lines up vertically:
//
//	offset(C) = offset(P) + (sourceIdx - targetIdx) * Metrics.Step()
//
// Clusters with no anchor to their predecessor inherit the predecessor's
// offset. Only one anchor drives each adjacent pair; other links may end up
// slanted.
//
// # Connectors
//
// [Resolve] emits one [Connector] per distinct (earlier cluster, earlier
// position, later position) link in a super-cluster, including links that
// skip over intermediate clusters. Connectors arriving at the same cluster
// are spread over lanes so they do not overlap.
package align
