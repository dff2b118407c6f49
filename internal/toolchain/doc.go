// Package toolchain probes the external tools a scaffold run needs (Node, the
// chosen package manager, git) and checks their versions against semver
// constraints. It backs the "doctor" command and the preflight warnings
// printed before scaffolding.
package toolchain
