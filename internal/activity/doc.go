// Package activity models one recorded exercise trial: a tabular data file
// loaded on demand, ground-truth annotations kept mutually consistent, and
// sliding-window iteration over the rows.
//
// # Annotations
//
// Ground coordinates are a flat list of cut points read in pairs. Primitive
// deviations carry one value per pair and pointwise labels one value per
// table row. Every setter validates against the current sibling state and
// returns a validation error without modifying anything when a count does
// not line up.
//
// # Streaming
//
//	if err := act.Acquire(); err != nil {
//	    return err
//	}
//	windows, err := act.Stream(10, 1)
//	if err != nil {
//	    return err
//	}
//	for rows, labels := range windows {
//	    _ = rows.RowCount() // always 10
//	    _ = labels          // nil when the activity is unlabeled
//	}
package activity
