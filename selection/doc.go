// Package selection provides bounded best-candidate selection.
//
// Two modes share identical observable semantics. Heap is the incremental
// mode: a fixed-capacity max-heap that retains the k smallest scores seen so
// far with O(log k) updates, exposing the current worst score for pruning
// decisions during tree traversal. Bottom and Top are the batch mode: given
// a complete slice they extract the n smallest or largest values by partial
// quickselect instead of a full sort. The head-first variants surface the
// boundary (n-th best) value as the first output element for cheap threshold
// checks.
//
// NaN values never rank: they are excluded from every candidate pool and
// never count toward n.
package selection
