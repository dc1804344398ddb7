//go:build blit_nobatch

package blit

// batchRows is disabled: every row operation runs the scalar path.
const batchRows = false
