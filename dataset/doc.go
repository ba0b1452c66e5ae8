// Package dataset provides Frame, the in-memory column table that a
// simulation pipeline grows step by step.
//
// A Frame holds named float64 columns of equal length; rows correspond to
// level-1 (innermost) observation units. Pipeline stages extend a Frame by
// column-binding their contribution; row order is the alignment contract
// between stages, so every mutation validates row counts and fails fast
// with ErrRowCountMismatch instead of silently misaligning columns.
//
// ⚙️ Usage:
//
//	f := dataset.New()
//	_ = f.AddColumn("subject", ids)
//	_ = f.AddColumn("b0", intercepts)
//	other, _ := dataset.FromMatrix(effects, []string{"b1", "b2"})
//	_ = f.Bind(other)
//
// Frames are not safe for concurrent mutation; each simulation replicate
// owns its Frame exclusively.
package dataset
