// Package templates renders the file contents SassWave writes into generated
// projects: SCSS defaults, React and Next.js components, and the 3D demo scene.
//
// Sources live under files/ and are embedded at build time. They are parsed
// with "[[" "]]" delimiters so JSX expressions such as style={{ ... }} pass
// through untouched.
package templates
