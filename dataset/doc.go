// Package dataset defines the Ekadashi dataset document types.
//
// A dataset document wraps an ordered sequence of Ekadashi entries together
// with document-level metadata (version, generation date, source attribution,
// target year). Each entry carries a localized name map and per-timezone
// timing blocks whose instants are ISO-8601 strings with explicit UTC offsets.
//
// All types include JSON struct tags matching the on-disk document shape.
package dataset
