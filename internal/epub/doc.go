// Package epub extracts structured content from EPUB archives.
//
// An EPUB is a zip container holding XHTML content plus XML metadata. The
// package resolves META-INF/container.xml to the OPF package document, parses
// metadata/manifest/spine from it, and layers best-effort extraction on top:
// a hierarchical table of contents (NCX or EPUB3 nav), a cover image located
// through a prioritized heuristic chain, and per-chapter plain text produced
// by HTML cleaning.
//
// Failure handling follows two tiers. Missing container.xml, an unresolvable
// OPF path, or a missing package node are fatal. The TOC and cover are
// advisory: any failure there degrades to an empty/absent result with a
// logged warning, never an error.
package epub
