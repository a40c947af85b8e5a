// Package formatter handles reading and writing dataset documents as JSON.
//
// Documents are written pretty-printed with 2-space indentation and with HTML
// escaping disabled, so non-ASCII names (Devanagari, diacritics) survive
// byte-for-byte. Writes go through a temp file plus rename: a failed run
// never leaves a partial document behind.
package formatter
