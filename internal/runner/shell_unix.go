//go:build !windows

package runner

// shellCommand returns the program and arguments that run command in sh
func shellCommand(command string) (string, []string) {
	return "sh", []string{"-c", command}
}
