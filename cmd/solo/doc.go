// Command solo shows the process-wide singleton in action.
//
// It asks for the singleton twice and prints whether both calls returned the
// same object:
//
//	$ solo
//	true
//
// The result is the only thing written to stdout. Logs go to stderr; pass
// --verbose (-v) to see when the instance is constructed:
//
//	$ solo -v
//
// solo takes no positional arguments. Any argument is a usage error and exits
// with status 2.
package main
