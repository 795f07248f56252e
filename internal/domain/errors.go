package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidParams is returned when deployment parameters fail validation
	ErrInvalidParams = errors.New("invalid deployment parameters")

	// ErrNetworkNotConfigured is returned when an operation needs an RPC endpoint but none is set
	ErrNetworkNotConfigured = errors.New("no network configured (use --network or --rpc-url)")

	// ErrNetworkMismatch is returned when the RPC endpoint reports a different chain ID
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrSignerNotConfigured is returned when no signer source is available
	ErrSignerNotConfigured = errors.New("no signer configured")

	// ErrArtifactNotFound is returned when the compiled contract artifact can't be located
	ErrArtifactNotFound = errors.New("contract artifact not found")

	// ErrNoCodeAfterDeploy is returned when the deployment receipt succeeded but no code exists
	ErrNoCodeAfterDeploy = errors.New("no contract code after deployment")

	// ErrTransactionFailed is returned when a mined transaction has a failed status
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrChecksFailed is returned when one or more deployment checks fail
	ErrChecksFailed = errors.New("deployment checks failed")

	// ErrCancelled is returned when the user declines a confirmation prompt
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoReleasableAmount matches the VestingWallet revert raised when nothing is due
	ErrNoReleasableAmount = errors.New(NoReleasableAmountReason)
)

// NoReleasableAmountReason is the revert reason of release() when nothing is due.
const NoReleasableAmountReason = "No releasable amount"

// RevertError is a contract revert surfaced by the node, with its decoded reason.
type RevertError struct {
	Method string
	Reason string
	Data   []byte
}

func (e *RevertError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "<no reason>"
	}
	if e.Method == "" {
		return fmt.Sprintf("execution reverted: %s", reason)
	}
	return fmt.Sprintf("%s reverted: %s", e.Method, reason)
}

// Is lets errors.Is match well-known revert reasons.
func (e *RevertError) Is(target error) bool {
	if target == ErrNoReleasableAmount {
		return strings.EqualFold(strings.TrimSpace(e.Reason), NoReleasableAmountReason)
	}
	return false
}

// ValidationError lists every invalid deployment parameter at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidParams.Error(), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParams
}
