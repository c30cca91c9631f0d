// Package colls bridges slices and maps into the container types:
// first-or-none, single-or-failure, emptiness checks and map lookups.
package colls
