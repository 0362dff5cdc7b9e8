// Package console runs the interactive alarm clock session: it prompts for
// a time until the input is valid, arms the scheduler, prints the banner
// when the alarm goes off and exits on Enter.
package console
