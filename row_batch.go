//go:build !blit_nobatch

package blit

// batchRows enables the vectorizable group loops in CompositeRow and
// MaskRGBRow. Build with -tags blit_nobatch to force the scalar path;
// results are identical either way.
const batchRows = true
