package glib

import (
	"bufio"
	"os"
	"strings"
)

func osVersion() string {

	file, err := os.Open("/etc/os-release")
	if err != nil {
		return "unknown"
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if found && key == "PRETTY_NAME" {
			return strings.Trim(strings.TrimSpace(value), "\"")
		}
	}

	return "unknown"
}
