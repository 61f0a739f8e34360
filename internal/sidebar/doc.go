// Package sidebar defines the navigation trees rendered next to documentation
// pages.
//
// A Config maps a locale path prefix (for example "/en/guide/") to an ordered
// list of groups, each holding a display text and ordered document references.
// Order is significant: it is the order the theme renders. Config therefore is
// a slice rather than a Go map, and its YAML and JSON codecs emit and accept a
// mapping while keeping the declared order.
//
// The built-in sidebars for the site are returned by English, Chinese and
// Default. Each call returns a fresh value, so callers may modify the result
// without affecting later calls.
package sidebar
