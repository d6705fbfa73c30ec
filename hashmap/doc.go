// Package hashmap implements a chained hash map: a dynamic array of
// doubly-linked-list buckets, CRC32C prehashing and universal MAD
// compression into the table.
//
// The table capacity walks a fixed prime schedule; when the load factor
// reaches 0.9 the next prime is adopted and every entry rehashed.
//
// Instances are not safe for concurrent use.
package hashmap
