// Package script compiles Lua sort comparators and filters over records.
//
// A comparator script defines compare(a, b). It may return a number
// (negative, zero, positive) or a boolean meaning "a sorts before b":
//
//	function compare(a, b)
//	  return a.year - b.year
//	end
//
// A filter script defines match(item) returning a boolean:
//
//	function match(item)
//	  return item.author == "Shakespeare"
//	end
//
// Records are passed as tables. Scripts run in a state with only the base,
// table, string and math libraries. Runtime errors do not escape: the
// comparison falls back to "equal", the filter to "no match", and the
// first error is kept for Err.
//
// A compiled script is not safe for concurrent use.
package script
