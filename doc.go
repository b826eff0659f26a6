// Package listprops enumerates the metadata properties attached to files
// and renders them as a sorted, aligned listing.
//
// # Quick Start
//
// Listing the properties of every JPEG in a directory:
//
//	lister, err := listprops.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer lister.Close()
//
//	results := lister.Run(ctx, []string{"photos/*.jpg"})
//	listprops.WriteResults(os.Stdout, results, listprops.RenderConfig{}, false)
//
// # Pipeline
//
// Each matched file flows through the same stages:
//
//	path
//	  ├─ [StoreProvider]   - ordered (key, raw value) pairs
//	  ├─ [Resolver]        - display name, canonical name, type flags per key
//	  ├─ [FormatValue]     - raw value to display string
//	  ├─ [ContainerReader] - ISO base media brand and timestamps
//	  ├─ [SortRows]        - canonical name, then display name, ordinal case-insensitive
//	  └─ [Render]          - aligned text lines
//
// The store provider, resolver and container reader are interfaces; New
// wires the built-in implementations, and the With* options replace them.
//
// # Rows
//
// A Row always has a non-empty DisplayName and CanonicalName and a
// four-character Flags string. Flags letters are S (system), I (innate),
// P (can be purged) and V (viewable) in that order, "-" for an unset bit.
// Properties without a descriptor get "????" and are named by their key;
// container rows get "----".
//
// # Error Handling
//
// Failures never stop a run. A pattern that matches nothing yields a
// PathResult with a *PathResolutionError; a file that cannot be opened
// yields a FileResult with an *OpenError. Both are written inline by
// WriteResults.
package listprops
