package commands

import (
	"errors"

	"github.com/Wilson971/Flowis-sub010/internal/commands"
	draftcmd "github.com/Wilson971/Flowis-sub010/internal/commands/draft"
	synccmd "github.com/Wilson971/Flowis-sub010/internal/commands/sync"
	"github.com/Wilson971/Flowis-sub010/internal/di"
	"github.com/Wilson971/Flowis-sub010/internal/logging"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterContainerCommands builds the command handlers exposed by the provided
// container and optionally registers them with registry and dispatcher
// integrations. Handlers are only built when the commands feature is enabled
// and the backing service exists.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	cfg := container.Config
	if !cfg.Features.Commands {
		return &RegistrationResult{}, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	loggerFor := func(area string) interfaces.Logger {
		return logging.ModuleLogger(provider, "flowis.commands."+area)
	}

	timeout := cfg.Commands.Timeout

	// Push commands.
	if orchestrator := container.PushOrchestrator(); orchestrator != nil {
		syncLogger := loggerFor("sync")
		var pushOpts []commands.HandlerOption[synccmd.PushEntitiesCommand]
		var cancelOpts []commands.HandlerOption[synccmd.CancelSyncCommand]
		if timeout > 0 {
			pushOpts = append(pushOpts, commands.WithTimeout[synccmd.PushEntitiesCommand](timeout))
			cancelOpts = append(cancelOpts, commands.WithTimeout[synccmd.CancelSyncCommand](timeout))
		}
		register(synccmd.NewPushEntitiesHandler(orchestrator, syncLogger, pushOpts...))
		register(synccmd.NewCancelSyncHandler(orchestrator, syncLogger, cancelOpts...))
	}

	// Draft commands.
	if ingestor := container.DraftIngestor(); ingestor != nil {
		var ingestOpts []commands.HandlerOption[draftcmd.IngestDraftCommand]
		if timeout > 0 {
			ingestOpts = append(ingestOpts, commands.WithTimeout[draftcmd.IngestDraftCommand](timeout))
		}
		register(draftcmd.NewIngestDraftHandler(ingestor, loggerFor("draft"), ingestOpts...))
	}

	return result, errs
}
