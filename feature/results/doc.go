// Package results exposes archived comparison reports over HTTP.
//
// It lists recorded runs from the history database and streams the archived
// report artifacts (comparison CSV, missing-keys listing) straight from
// object storage. The feature plugs into the server through the loader
// registry.
package results
