// Package output reports validation progress and results to the console.
//
// A Reporter receives three kinds of events from a run:
//
//  1. CategoryStarted, once per category before its packs are checked
//  2. Issue, once per failing condition, as it is discovered
//  3. Summary, once after every category has been processed
//
// Issue may be called from several goroutines at once; implementations
// serialize their writes so every line is written whole.
//
// Two implementations exist. TextReporter writes one human-readable line
// per event, with a symbol per issue kind and lipgloss styling from the
// styles package when color is enabled. Headers and the success line go to
// stdout, issues and the complaint summary to stderr. JSONReporter stays
// silent until Summary and then writes a single JSON document to stdout,
// for CI jobs that parse the result.
package output
