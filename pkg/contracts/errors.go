package contracts

import "errors"

var (
	// ErrContractNotFound is returned when the requested contract does not exist.
	ErrContractNotFound = errors.New("contract not found")

	// ErrInvalidContract is returned when a contract fails validation
	// before persistence.
	ErrInvalidContract = errors.New("invalid contract")

	// ErrStoreIO is returned when the contract store cannot read or
	// write its backing files.
	ErrStoreIO = errors.New("contract store IO failure")
)
