package client

import (
	"context"

	"banktui/internal/contract"
)

// refetchBindings is the consistency contract between writes and reads: a
// successful write invalidates these reads, which must be re-issued so every
// view reflects the new backend state. Kept as one table so the contract is
// auditable in one place.
var refetchBindings = map[contract.Operation][]contract.Operation{
	contract.OpCreateAccount:     {contract.OpListAccounts},
	contract.OpRecordTransaction: {contract.OpListTransactions, contract.OpListAccounts},
}

// BindingsFor returns the read operations invalidated by a successful write,
// in the order they should be re-issued. The slice is a copy.
func BindingsFor(op contract.Operation) []contract.Operation {
	bound, ok := refetchBindings[op]
	if !ok {
		return nil
	}
	out := make([]contract.Operation, len(bound))
	copy(out, bound)
	return out
}

// RefetchBound re-issues every read bound to a successful write, in order.
// The first failure stops the sequence and is returned; the write itself has
// already succeeded and its reporting must not depend on this.
func (c *Client) RefetchBound(ctx context.Context, op contract.Operation) error {
	for _, read := range BindingsFor(op) {
		if err := c.Refetch(ctx, read); err != nil {
			return err
		}
	}
	return nil
}
