package logging

import (
	"context"
	"strings"

	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

const (
	rootModule     = "flowis"
	catalogModule  = "flowis.catalog"
	pushModule     = "flowis.push"
	draftModule    = "flowis.draft"
	commandsModule = "flowis.commands"
)

const (
	fieldEntityType  = "entity_type"
	fieldEntityID    = "entity_id"
	fieldPushAttempt = "attempt"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for catalog services.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// PushLogger returns the logger namespace reserved for the push pipeline.
func PushLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pushModule)
}

// DraftLogger returns the logger namespace reserved for draft ingestion.
func DraftLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, draftModule)
}

// WithSyncContext enriches the provided logger with common push fields such
// as entity type, entity id, and attempt number. Empty values are ignored.
func WithSyncContext(logger interfaces.Logger, entityType, entityID string, attempt int) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(entityType); trimmed != "" {
		fields[fieldEntityType] = trimmed
	}
	if trimmed := strings.TrimSpace(entityID); trimmed != "" {
		fields[fieldEntityID] = trimmed
	}
	if attempt > 0 {
		fields[fieldPushAttempt] = attempt
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
