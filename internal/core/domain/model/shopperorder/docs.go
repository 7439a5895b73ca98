// Package shopperorder models the order a shopper publishes (or attaches to a
// runner-order request as a sub-order) together with its exclusively owned
// items and images, and the Request a runner files against it.
//
// An order is created with all of its children in one transaction and is
// deleted with them. Its status mirrors the active request: see package workflow.
package shopperorder
