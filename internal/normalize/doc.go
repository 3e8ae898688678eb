// Package normalize turns loosely typed tool arguments into strict values.
//
// Callers send JSON, so numbers arrive as float64, booleans may arrive as
// strings, and array fields such as lists or tags may arrive either as a
// native array or as a string holding JSON array text. Args hides those
// differences. Failures are reported as *Rejection values that carry a
// classification and a message fit to show the caller.
//
// Rules:
//   - Absent, null and blank values read as the documented default.
//   - Identifier zero means absent: no object can be addressed by id 0.
//   - Required checks run before enum and shape checks and name every
//     required field in one message.
//   - Free-form objects pass through untouched.
package normalize
