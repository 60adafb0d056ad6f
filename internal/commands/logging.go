package commands

import (
	"strings"

	"github.com/Wilson971/Flowis-sub010/internal/logging"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

const commandModuleRoot = "flowis.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriching it with
// consistent structured fields so every execution is attributable in logs.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
