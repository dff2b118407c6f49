// Package assets downloads the remote files listed in the asset manifest into a
// generated project.
//
// The manifest is a JSON array of entries. Each entry is checked against an
// embedded JSON schema, filtered by framework, and written only to destinations
// inside the project directory. Downloads follow at most MaxRedirects
// redirects and land through a temporary file, so a failed entry never leaves
// a partial file behind.
package assets
