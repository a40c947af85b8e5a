// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every knob has a compiled-in default reproducing the original dataset runs,
// so both converters work without any config file present: the DST rule and
// its offsets, the correction table, the document metadata literals, and the
// input/output paths are all configuration data rather than code.
package config
