/*
Package polarbear implements labelled, typed data containers for time-series
and data-analysis workloads.

The package is built on three abstractions:

  - Index: a searchable ordered collection of labels, mapping labels to
    positions.

  - Buffer: a rectangular array of homogeneous values. Buffers are an
    interface, leaving room for alternative storage backends; the package
    provides dense in-memory buffers, page-compressed buffers, and read-only
    memory-mapped buffers.

  - Series and Frame: compositions of buffers aligned against indexes. A
    Series pairs one Index with one Buffer; a Frame pairs one Index with
    multiple named, typed columns.

Sorted indexes are the backbone of efficient lookups, so the package also
exposes the ordering primitives it is built on: IsSorted, OrderOf, and the
page-level Find/Search helpers.
*/
package polarbear
