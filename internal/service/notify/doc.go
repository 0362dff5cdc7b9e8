// Package notify renders alarm events for humans: a green RING! banner on a
// terminal and an optional desktop alert.
package notify
