// Package answers holds the record that drives a scaffold run: project name,
// framework, language, package manager, git and 3D choices.
//
// An Answers value comes from one of three places: command-line flags with
// defaults (Defaults), a YAML or JSON answers file (LoadFile), or the
// interactive numbered-menu flow (Prompt). All three finish with Validate.
package answers
