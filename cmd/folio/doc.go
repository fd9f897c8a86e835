// Command folio inspects EPUB files and produces AI chapter summaries.
package main
