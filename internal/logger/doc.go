// Package logger wraps zap to give the alarm clock:
//   - a global sugared logger writing console lines to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and adjustment,
//   - leveled helpers that take the logger from a context (InfoKV, WarnKV, etc.).
//
// Standard output is left to the user-facing prompts and alarm banner.
package logger
