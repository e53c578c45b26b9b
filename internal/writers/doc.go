// Package writers turns primer records into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (info block, JSON, JSONL).
//   • core/primer stays domain-only; the app only picks a format.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
