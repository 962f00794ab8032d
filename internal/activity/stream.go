package activity

import (
	"iter"

	apperrors "github.com/b3by/pymudata/internal/errors"
	"github.com/b3by/pymudata/internal/table"
	"github.com/b3by/pymudata/internal/validation"
)

// StreamParams are the sliding window settings
type StreamParams struct {
	Window int `validate:"gt=0"`
	Stride int `validate:"gt=0"`
}

// Stream returns an iterator over sliding windows of the table. Each window
// holds rows [offset, offset+window) for offset = 0, stride, 2*stride, ...
// while the window fits; a trailing partial window is dropped. The label
// slice is aligned with the window rows, or nil when labels are unset.
//
// Windows share storage with the table and must not be modified. Label
// windows are copies. Every range over the returned iterator starts again
// from offset 0.
func (a *Activity) Stream(window, stride int) (iter.Seq2[*table.Table, []int], error) {
	if a.table == nil {
		return nil, apperrors.NewStateError("table not loaded").
			WithContext("file_path", a.filePath)
	}
	if err := validation.Struct(StreamParams{Window: window, Stride: stride}); err != nil {
		return nil, err
	}

	t := a.table
	labels := a.labels
	metrics := a.metrics
	a.logger.Debug("Streaming windows", "window", window, "stride", stride, "rows", t.RowCount())

	return func(yield func(*table.Table, []int) bool) {
		last := t.RowCount() - window
		for offset := 0; offset <= last; offset += stride {
			var lw []int
			if labels != nil {
				lw = append([]int(nil), labels[offset:offset+window]...)
			}
			metrics.WindowStreamed()
			if !yield(t.Slice(offset, offset+window), lw) {
				return
			}
			// offset+stride would overflow or pass the last window
			if stride > last-offset {
				return
			}
		}
	}, nil
}
