// Package config manages user-level settings stored at ~/.sasswave/config.yaml.
// Values can be overridden with SASSWAVE_* environment variables. Load reads
// the file, and Current snapshots the effective values into a Settings struct
// that callers pass explicitly to the post-processing stages.
package config
