// Package client implements the interactive console for the gallery.
//
// It is a thin collaborator over the services: state changes happen in the
// catalog and session services, and the console re-runs the filter engine
// after every structural change so the visible listing stays consistent.
package client
