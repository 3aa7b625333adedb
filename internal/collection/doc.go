// Package collection provides observable ordered collections.
//
// Three flavors share one read API:
//
//   - List keeps items in insertion order and allows duplicates.
//   - Set drops writes that would introduce a duplicate.
//   - Sorted is a Set that re-sorts with a Comparator after every mutation.
//
// Every collection owns an *event.Emitter (or shares one via WithEmitter)
// and triggers a fixed sequence of topics per mutation:
//
//	Add, AddMany, Prepend, Insert   add, change
//	Remove, RemoveMany, RemoveWhere remove, change
//	Replace, ReplaceItem            replace, change
//	Clear                           remove, clear, change
//	Sorted mutators                 <base sequence>, sort, change
//
// Writes that change nothing trigger nothing, except Clear, which always
// notifies, and Sorted, which always re-sorts.
//
// Payloads are the Event types Added, Removed, Replaced, Cleared, Resorted
// and Changed. Listen subscribes to a payload type directly:
//
//	collection.Listen(list.Events(), func(e collection.Removed[*Animal], env *event.Envelope) error {
//	    for _, op := range e.Operations {
//	        log.Printf("removed %s from %d", op.Item.Name, op.Index)
//	    }
//	    return nil
//	})
//
// Collections are not safe for concurrent mutation. Handlers run
// synchronously inside the mutating call; an error returned by a handler is
// returned by the mutator after the mutation has been applied.
package collection
