// Package config defines the alarm clock settings and provides helpers to
// load, validate and save them in YAML format.
//
// All fields are optional; Default returns the values used when no
// settings file exists.
package config
