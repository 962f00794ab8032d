// Package files enumerates the on-disk layout of a dataset: the exercise
// directories directly under a root, and the activity files directly inside
// each exercise directory.
//
//	discovery := files.NewDiscovery("/data/exercises")
//	exercises, err := discovery.ListDirectories("")
//	activities, err := discovery.FindFiles("flexstand", ".csv")
//
// Neither call recurses. Relative directories are resolved against the base
// path given to NewDiscovery.
package files
