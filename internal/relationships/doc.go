// Package relationships models the four ways objects relate to each other:
// association, aggregation, composition and inheritance (expressed in Go as
// embedding plus a shared interface).
package relationships
