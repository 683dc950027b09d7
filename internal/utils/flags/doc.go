// Package flags provides helpers for binding yes/no toggles and enumerated choice flags to Cobra commands.
package flags
