// Package scheduler implements the alarm scheduler: a single periodic tick
// source comparing the wall clock against a target time of day and firing
// a one-shot notification to its observers on an exact second match.
package scheduler
