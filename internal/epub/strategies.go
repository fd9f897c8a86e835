package epub

import "path"

// entryStrategy attempts to locate an archive entry for a manifest href.
// Strategies are data so the priority order is testable per tier.
type entryStrategy struct {
	name string
	fn   func(a *Archive, href, opfDir string) (string, bool)
}

// entryStrategies is ordered: direct path, conventional prefix, then a
// suffix search over every entry name for archives that do not mirror
// manifest hrefs at the expected depth.
var entryStrategies = []entryStrategy{
	{name: "direct", fn: func(a *Archive, href, _ string) (string, bool) {
		if a.Has(href) {
			return normalizePath(href), true
		}
		return "", false
	}},
	{name: "prefix", fn: func(a *Archive, href, opfDir string) (string, bool) {
		if opfDir != "" && opfDir != "." {
			if joined := normalizePath(path.Join(opfDir, href)); a.Has(joined) {
				return joined, true
			}
		}
		if prefixed := "OEBPS/" + href; a.Has(prefixed) {
			return normalizePath(prefixed), true
		}
		return "", false
	}},
	{name: "suffix", fn: func(a *Archive, href, _ string) (string, bool) {
		for _, name := range a.Names() {
			if hasPathSuffix(name, href) {
				return name, true
			}
		}
		return "", false
	}},
}

// resolveEntry applies the strategy chain, first success wins.
func resolveEntry(a *Archive, href, opfDir string) (string, bool) {
	if href == "" {
		return "", false
	}
	href = normalizePath(href)
	for _, s := range entryStrategies {
		if resolved, ok := s.fn(a, href, opfDir); ok {
			return resolved, true
		}
	}
	return "", false
}

func hasPathSuffix(name, href string) bool {
	if name == href {
		return true
	}
	n, h := len(name), len(href)
	return n > h && name[n-h-1] == '/' && name[n-h:] == href
}
