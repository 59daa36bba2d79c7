// Package store implements the persistence layer of the gallery: a local
// sqlite database holding a single string-keyed table of JSON records, plus
// the Adapter that the domain services talk to.
//
// The Adapter never surfaces errors. Reads degrade to the caller-supplied
// default and writes report success as a boolean, so a persistence failure
// warns the user without aborting the in-memory mutation that already
// happened. A failed write therefore leaves memory ahead of the durable
// store until the next successful write; for a single-user local tool this
// is accepted and logged, not rolled back.
package store
