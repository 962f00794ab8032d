// Package pymu is the public entry point of pymudata. It re-exports the
// activity and dataset types and provides FromFile for the common case of a
// single recording:
//
//	act, err := pymu.FromFile("data/hs/hs_1.csv",
//	    pymu.WithExercise("hs"),
//	    pymu.WithEager(),
//	)
//	if err != nil {
//	    return err
//	}
//	windows, err := act.Stream(50, 10)
package pymu
