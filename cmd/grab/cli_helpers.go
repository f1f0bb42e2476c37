package main

import "strings"

// joinCommand renders a command line for display, quoting arguments that
// contain whitespace.
func joinCommand(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if strings.ContainsAny(arg, " \t") {
			quoted[i] = "'" + arg + "'"
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}
