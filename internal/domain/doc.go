// Package domain defines the listmonk resource types exchanged with the remote API.
//
// Types in this package are transient value objects: they are decoded from a
// remote response or built from normalized tool arguments, serialized, and
// discarded. Nothing here holds process-wide state.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *http.Client, no context.Context in struct fields
//   - JSON tags follow the listmonk wire names
//   - Enums are typed strings with an exported list of allowed values
package domain
