// Package postinstall applies SassWave defaults to a project tree a framework
// generator has just created.
//
// Every transformation works against well-known candidate paths (see package
// layout) and skips quietly when an expected file is absent. Nothing parses
// source code: files are rewritten whole or patched with targeted string
// insertions that are safe to repeat.
//
// The Installer sequences the stages:
//
//	sass install -> SetupReact | SetupNext -> SetupThree -> InitGit
//
// Failures inside SetupReact and SetupNext are logged and do not stop the run.
// A failed sass or three.js install is returned to the caller.
package postinstall
