package mdp

import "errors"

// Errors returned by finite-state MDPs. Callers should compare against
// these values with errors.Is, since they are usually wrapped with the
// name of the function that produced them.
var (
	// ErrNotImplemented is returned when a transition or reward lookup
	// is requested from dynamics that do not supply one
	ErrNotImplemented = errors.New("capability not implemented")

	// ErrNoISD is returned when an MDP is constructed without an
	// initial-state distribution
	ErrNoISD = errors.New("no initial-state distribution")

	// ErrInvalidAction is returned for actions outside [0, NumActions)
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidState is returned for states outside [0, NumStates)
	ErrInvalidState = errors.New("invalid state")

	// ErrUndefinedReward is returned when the reward of a state that can
	// never be occupied is requested
	ErrUndefinedReward = errors.New("reward undefined for state")

	// ErrInvalidDistribution is returned for weights that are empty,
	// negative, or do not sum to 1
	ErrInvalidDistribution = errors.New("invalid probability distribution")
)
