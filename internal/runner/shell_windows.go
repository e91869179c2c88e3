//go:build windows

package runner

// shellCommand returns the program and arguments that run command in cmd.exe
func shellCommand(command string) (string, []string) {
	return "cmd", []string{"/C", command}
}
