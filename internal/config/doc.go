// Package config loads the collection viewer configuration and record
// fixtures.
//
// Files are parsed by extension: .toml with go-toml, .yaml and .yml with
// yaml.v3. Reads go through a FileSystem so tests can use an in-memory one.
//
// A configuration file looks like:
//
//	source = "books.toml"
//	key    = "isbn"
//	title  = "Library"
//
//	[sort]
//	field      = "year"
//	descending = true
//
//	[filter]
//	script = "function match(item) return item.year > 1900 end"
//
//	[display]
//	columns = ["title", "author", "year"]
//
//	[watch]
//	enabled  = true
//	debounce = "150ms"
//
//	[log]
//	level = "debug"
//	file  = "collview.log"
//
// A fixture holds the records under an items key:
//
//	[[items]]
//	isbn  = "0-14-043"
//	title = "Hamlet"
package config
