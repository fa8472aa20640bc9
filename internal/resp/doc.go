// Package resp converts RESP instrument-response text into assembled SEED
// group instances.
//
// The pipeline is:
//
//	RESP lines
//	  → Tokenizer (field triples and boundary markers)
//	  → Assembler (group detection)
//	  → Matcher (bind values to template slots)
//	  → Fill (default every unbound slot)
//	  → domain.Document (header, lookup and entity buckets)
//
// A group ends when the group tag changes or a "#...+" comment line is
// seen. Failures are scoped to the group they occur in: the group is
// dropped, the problem is recorded, and assembly continues.
//
// The package performs no I/O of its own beyond reading the supplied
// io.Reader, and is not safe for concurrent use of a single Assembler call.
package resp
