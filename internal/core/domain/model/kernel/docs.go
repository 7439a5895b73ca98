// Package kernel provides the value objects shared by both order workflows:
// UUID identifiers, Money amounts, TimeWindow intervals and Page windows for listings.
package kernel
