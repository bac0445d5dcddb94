// Package distill extracts the main content of HTML pages and renders it
// as reflowed plain text. Pages are pruned with a node-density heuristic
// that removes navigation and boilerplate, then the surviving text is
// split into paragraphs, annotated with link targets, and wrapped to a
// maximum line length.
//
// This package contains domain types, interfaces, and the pure text
// pipeline following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, rod/).
package distill
