// Package config loads preload manifests: dictionaries of values to intern
// into a registry at startup.
//
// A manifest is a small YAML or JSON document:
//
//	name: http-headers
//	symbols:
//	  - content-type
//	  - content-length
//	  - user-agent
//
// Load one and feed it to a registry:
//
//	m, err := config.FromFile("headers.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := m.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	pinned := r.Preload(ctx, m.Symbols)
//
// The returned handles pin the dictionary in the registry; release them when
// the values may be evicted again.
package config
