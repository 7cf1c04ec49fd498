// Package restrict provides string types that guarantee the absence of a
// fixed forbidden set of bytes.
//
// The central type is [String], a byte string parameterized by a [Set] of
// forbidden bytes. Construction and mutation are checked: [New] validates the
// whole input and reports the first offending byte with its position, while
// the mutators reject a forbidden byte before writing, so a value that
// violates its set is never observable. [Filter] is the non-failing
// alternative that silently drops forbidden bytes, for call sites where that
// is the intended policy.
//
// [Path] is the NUL-excluding specialization, intended for values passed to
// OS APIs where an embedded NUL is illegal or dangerous: file paths, argv
// entries, environment values.
//
// Heavy string manipulation should happen on a plain string or []byte
// followed by a single checked conversion through [New], rather than through
// repeated checked mutations.
package restrict
