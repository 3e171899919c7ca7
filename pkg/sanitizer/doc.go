// Package sanitizer provides small string transforms and generic helpers to
// chain them into reusable cleaning pipelines.
//
// Transforms are plain func(string) string values, so they compose with Apply
// and Compose without adapters:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.FoldWidth,
//	    sanitizer.ToUpper,
//	    sanitizer.RemoveChars(" ."),
//	)
//	clean(" ｊ 07.013.380 ") // "J07013380"
//
// All functions are pure and safe for concurrent use.
package sanitizer
