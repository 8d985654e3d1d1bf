// Package sanitizer prepares user-supplied payloads for storage without
// rewriting their content: stored records read back exactly as submitted.
//
// The only changes it makes are:
//   - Lists: an absent list becomes an empty one
//   - Emails used as lookup keys: trim and lowercase
package sanitizer
