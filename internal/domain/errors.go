package domain

import "errors"

// Domain errors.
var (
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrNoGitmodulesEntry  = errors.New("no tools submodule declared in .gitmodules")
	ErrSubmoduleNotFound  = errors.New("submodule not found")
	ErrAlreadyInitialized = errors.New("tools submodule already checked out")
)
