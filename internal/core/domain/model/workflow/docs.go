// Package workflow defines the request and order status machines shared by the
// runner-order and shopper-order workflows.
//
// Requests move along
//
//	REQUESTING ──> MATCHED ──> DELIVERED_REQUEST ──> DELIVERED ──> REVIEW_REQUEST ──> REVIEWED
//	     │
//	     └──> MATCH_FAIL
//
// Orders follow their active request, but their pre-match value depends on the
// orientation: a shopper-published order waits in MATCHING, the sub-order
// anchored by a runner-order request waits in REQUESTING. RequestStatus and
// OrderStatus are therefore distinct types, and Plan resolves the paired order
// edge for every request edge from an explicit per-orientation table.
package workflow
