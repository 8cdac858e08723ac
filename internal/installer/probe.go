package installer

import "scipion-installer/internal/logger"

// CheckProgram fails with an InstallationError when program is not on PATH.
func CheckProgram(program string) error {
	path, err := lookPath(program)
	if err != nil {
		return Errorf("%s command not found.", program)
	}
	logger.Debug("[DEBUG] Found %s at %s\n", program, path)
	return nil
}
