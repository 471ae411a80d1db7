// Package report prints a puzzle's two answers followed by how long each
// part took:
//
//	Solution #1: 40
//	Solution #2: 25272
//
//	Time: 1.32 ms
//	Time #1: 0.71 ms
//	Time #2: 0.61 ms
//
// Durations under a second are shown in milliseconds, durations over a
// minute in floored minutes ("2.0 m") plus seconds, everything else in seconds.
package report
