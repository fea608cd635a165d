// Package jval provides a typed, immutable model of JSON documents:
//
// - A closed Value type with six variants (array, object, boolean, number, string, null) plus an absent zero value
// - Conversion to and from the raw trees produced by generic decoders (FromRaw / Raw)
// - Chain-safe keyed and indexed access where every miss is absent, never an error
// - Variant-exact typed readers and comparisons against native scalars
// - Structured JSON and YAML codecs plus pluggable JSON drivers under source/
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Writes never mutate shared containers; each one yields a new Value.
// - Reads degrade to absent; only indexed writes past the end of an array panic.
//
// Typical usage:
//
//	v, err := jval.Parse(data)
//	name, ok := v.Get("user").Get("name").AsString()
//	if v.Get("user").Get("tags").Index(0).EqualString("admin") { ... }
//
//	v.Set("seen", jval.Bool(true))
//	out, err := jval.Marshal(v)
package jval
