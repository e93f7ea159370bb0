package internal

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CellEdit is one pending SetCell call, as processed by ImportCells.
type CellEdit struct {
	Pos  Position
	Text string
}

// ImportCells applies a batch of edits to sheet. The syntax of every edit is
// validated concurrently against a scratch cell before any edit is applied,
// so a single malformed formula anywhere in the batch fails the whole import
// without partially mutating sheet. Edits that pass validation are then
// applied one at a time, in order, since cycle detection and back-edge
// rewiring for edit N can depend on edits 0..N-1 already being committed —
// that part of SetCell is inherently sequential and is never run
// concurrently against the sheet.
func ImportCells(ctx context.Context, sheet *Sheet, edits []CellEdit) error {
	group, ctx := errgroup.WithContext(ctx)
	for i := range edits {
		edit := edits[i]
		group.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !edit.Pos.IsValid() {
				return fmt.Errorf("edit %d: %w", i, ErrInvalidPosition)
			}
			scratch := newCell()
			if err := scratch.set(edit.Text); err != nil {
				return fmt.Errorf("edit %d: %w", i, err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i, edit := range edits {
		if err := sheet.SetCell(edit.Pos, edit.Text); err != nil {
			return fmt.Errorf("edit %d: %w", i, err)
		}
	}
	return nil
}
