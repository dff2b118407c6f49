// Package pkgmgr knows the command shapes of the supported JavaScript package
// managers and installs Bun on demand.
package pkgmgr
