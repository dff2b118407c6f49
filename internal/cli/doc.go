// Package cli defines the Cobra command tree for the sasswave-create CLI. The
// root command scaffolds a project; create, doctor, config and version are
// registered from their own files. Commands handle flags, prompts and output
// formatting and delegate the work to the internal packages.
package cli
