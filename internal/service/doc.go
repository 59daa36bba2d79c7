// Package service implements the domain core of the gallery: the credential
// store, the session state machine, the catalog store with its category
// taxonomy, the filter/search engine, and the export snapshot.
//
// Everything runs single-threaded and cooperatively: operations complete
// before returning, lockout and session expiry are judged lazily against the
// clock at the moment of access, and every state-changing operation writes
// through the persistence adapter synchronously. Services are plain structs
// handed their dependencies; there is no ambient global state.
package service
