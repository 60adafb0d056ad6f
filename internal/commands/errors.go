package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

const (
	messageRejectedCode   = "SYNC_MESSAGE_REJECTED"
	executionCanceledCode = "SYNC_EXECUTION_CANCELED"
	executionTimeoutCode  = "SYNC_EXECUTION_TIMEOUT"
	executionContextCode  = "SYNC_EXECUTION_CONTEXT_ERROR"
	executionFailedCode   = "SYNC_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "message rejected by validation").
		WithTextCode(messageRejectedCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "execution cancelled before completion").
			WithTextCode(executionCanceledCode)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "execution ran past its deadline").
			WithTextCode(executionTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "execution context error").
			WithTextCode(executionContextCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "execution failed").
		WithTextCode(executionFailedCode)
}
