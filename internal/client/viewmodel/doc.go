// Package viewmodel holds one object per screen. Each view model drives the
// session, the API client and the navigator and exposes its state as a
// Result, which the presentation layer renders.
//
// Screens are user-driven and serialized; a view model performs at most one
// in-flight fetch and ignores results that arrive after it was unmounted.
package viewmodel
