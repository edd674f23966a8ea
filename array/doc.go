/*
Package array implements Elm's Array: an immutable persistent sequence of
elements, designed for use-cases similar to Go slices.

An immutable persistent array has copy-on-write behaviour: Each “modification”
of the array (replacement, push, pop) creates a copy, leaving the original
unmodified. Under the hood, copy-on-write retains most of the memory held by
the original, and creates a new incarnation of parts of the structure only.
Thus, most of the structure/memory is shared between original and copy,
transparently to clients.

Immutable arrays are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package array

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elmkit.array'.
func tracer() tracing.Trace {
	return tracing.Select("elmkit.array")
}
