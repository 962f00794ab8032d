// Package dataset groups activities by exercise. A dataset root holds one
// sub-directory per exercise and each sub-directory one data file per
// activity; files directly under the root are ignored.
//
//	ds, err := dataset.New("data/")
//	if err != nil {
//	    return err
//	}
//	if err := ds.Synth(ctx); err != nil {
//	    return err
//	}
//	ds.MaskForExercise("hs")
//	acts, _ := ds.AllActivities() // only hs activities
//
// Masks only filter what Exercises, AllActivities and Activities return.
// Annotate always sees every activity.
package dataset
