/*
Package dict implements Elm's Dict: an immutable persistent mapping from
comparable keys to values, backed by an in-memory B-tree with copy-on-write
behaviour. Every "modification" (insertion, replacement, deletion) creates a
new incarnation of the dictionary, leaving the original unchanged; most of
the tree structure is shared between incarnations.

Iteration is always in ascending key order (or descending, if requested);
insertion order is irrelevant.

A good introduction to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elmkit.dict'.
func tracer() tracing.Trace {
	return tracing.Select("elmkit.dict")
}
