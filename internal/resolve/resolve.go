// Package resolve maps a framework and package manager to the shell command
// that scaffolds it.
package resolve

import (
	"fmt"
	"strings"

	"github.com/barisgit/fwselect/internal/catalog"
)

// Resolve returns the scaffolding command for fw with pm.
//
// An explicit entry in the framework's command table is returned verbatim.
// Unlisted pairs fall back to "<pm> create <name>@latest" with the framework
// name lower-cased, so a command is always produced.
func Resolve(fw catalog.Framework, pm catalog.PackageManager) string {
	if command, ok := fw.Commands[pm]; ok && command != "" {
		return command
	}
	return fallback(fw.Name, pm)
}

func fallback(name string, pm catalog.PackageManager) string {
	return fmt.Sprintf("%s create %s@latest", pm, strings.ToLower(name))
}

// Extras builds the command that adds the given packages with addVerb.
// It returns "" when there is nothing to add.
func Extras(addVerb string, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return addVerb + " " + strings.Join(ids, " ")
}
