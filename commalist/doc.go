// Package commalist models form fields whose value is a comma separated
// list. A field arrives either as the [Raw] string typed into a form or as
// a [Parsed] sequence produced by an earlier pass. [Split] turns any [List]
// into its parsed form, so running it twice is harmless.
package commalist
