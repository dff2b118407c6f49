// Package scaffold runs the upstream framework generators that create a new
// project directory: create-vite for React and create-next-app for Next.js.
// It powers the first stage of "sasswave-create"; everything after it mutates
// the tree the generator leaves behind.
package scaffold
