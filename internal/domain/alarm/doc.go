// Package alarm contains core domain types for the alarm clock.
//
// It defines TimeOfDay (the wall-clock second an alarm is set for), the
// strict HH:MM:SS parser used by input collaborators, and State (the
// lifecycle of a scheduler: idle, armed or fired).
package alarm
