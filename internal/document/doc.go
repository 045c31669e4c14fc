// Package document provides a uniform tree view over parsed hardware
// description documents and the matchers used to query them.
//
// A document is decoded into an immutable tree of tagged Node values
// (map / sequence / scalar). Queries walk the tree lazily in pre-order
// and return matches as a restartable iter.Seq, so a consumer can stop
// after the first hit without materializing the rest of the document.
//
// Key capabilities:
//   - Strict JSON decoding preserving object key order
//   - Relaxed-dialect decoding (comments, trailing commas, unquoted keys)
//     behind a normalizing adapter
//   - Key-or-value and field-value matchers with prefix regex semantics
package document
