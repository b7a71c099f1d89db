// Package dispatch turns a CLI invocation into a resolved generation plan:
// Parse validates the raw flag set (spec.md §6's switch table, §7's "user
// input errors" taxonomy), Resolve then picks the seed, operator family,
// and emission wiring that flag set names, so cmd/planargen itself stays a
// five-line parse/resolve/run/exit shell.
package dispatch
