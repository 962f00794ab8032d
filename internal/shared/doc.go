// Package shared holds helpers used by more than one internal package.
//
// The testutil subpackage provides a buffered slog handler so tests can
// assert on the notices emitted by activities and datasets:
//
//	logger, handler := testutil.NewTestLogger(t)
//	act, _ := activity.New(path, activity.WithLogger(logger))
//	_ = act.Acquire()
//	_ = act.Acquire()
//	testutil.AssertLogContains(t, handler, slog.LevelInfo, "already acquired")
//
// Nothing in this package carries domain logic.
package shared
