package autostart

import "strings"

// quoteCommand wraps an executable path in double quotes so that paths
// containing spaces survive the Windows Run-list command parser.
func quoteCommand(execPath string) string {
	return `"` + execPath + `"`
}

// parseCommand extracts the executable path from a stored launch command.
// Quoted commands yield the quoted segment; unquoted commands yield the
// first whitespace-delimited token.
func parseCommand(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return ""
	}

	if strings.HasPrefix(cmd, `"`) {
		rest := cmd[1:]
		if end := strings.Index(rest, `"`); end != -1 {
			return rest[:end]
		}
		return rest
	}

	if i := strings.IndexByte(cmd, ' '); i != -1 {
		return cmd[:i]
	}
	return cmd
}
