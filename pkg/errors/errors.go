package errors

import "errors"

var (
	ErrInvalidCard     = errors.New("invalid card")
	ErrInvalidJoker    = errors.New("invalid joker")
	ErrInvalidState    = errors.New("invalid game state")
	ErrInvalidLevels   = errors.New("invalid hand level table")
	ErrHandTooLarge    = errors.New("hand too large to search")
	ErrStateNotFound   = errors.New("state file not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTooManyStates   = errors.New("too many states in batch")
	ErrCacheMiss       = errors.New("cache miss")
	ErrEmptyClientName = errors.New("client name is required")
)
