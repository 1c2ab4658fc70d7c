// Package config loads the rollcall configuration from
// ~/.config/rollcall/config.toml. A missing file yields usable
// defaults; a malformed file is an error.
package config
