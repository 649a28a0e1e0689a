// Package yweather resolves a geographic coordinate to a weather report.
// It reverse-geocodes the coordinate into a WOEID (Where On Earth ID) and
// then fetches current conditions for that WOEID, delivering the outcome
// asynchronously to a ResultSink.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., xml/, http/, sqlite/).
package yweather
