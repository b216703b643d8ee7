// Package highlight classifies substrings of reconstructed card lines into
// semantic categories for display emphasis.
//
// Classification is driven by an ordered rule table evaluated as one
// combined left-to-right scan: at each position the first rule (in table
// order) whose pattern matches there wins, so produced spans never overlap
// and rule priority is the table order itself. Text matched by no rule
// becomes plain spans; nothing is ever dropped, and concatenating a line's
// spans always reproduces the line exactly.
//
// Two rule tables ship with the package: Rules, the full table used for
// ordinary card lines, and DetailRules, a reduced date/time-only table used
// to sub-highlight the detail text of a facility booking without losing the
// booking's outer venue category.
package highlight
