// Package client is the transport/cache client for the banking backend.
//
// One Client is constructed at startup and shared by every consumer. It
// serializes contract operations to the fixed GraphQL endpoint, decodes
// responses into the contract shapes, and keeps the latest result of every
// read in a snapshot store. Reads are network-only: the store is never
// consulted in place of a request, it only gives sibling components
// synchronous access to the most recent response.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"

	"banktui/internal/cache"
	"banktui/internal/config"
	"banktui/internal/contract"
	"banktui/internal/log"
)

// Client talks to the backend and caches the latest read results.
type Client struct {
	gql       *graphql.Client
	endpoint  string
	logger    *log.Logger
	snapshots *cache.Store[any]
}

// New builds the process-wide client. The underlying http.Client carries a
// cookie jar so ambient session cookies ride along on every request.
func New(cfg *config.Config, logger *log.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Discard()
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	httpClient := &http.Client{Jar: jar, Timeout: cfg.Timeout}
	return &Client{
		gql:       graphql.NewClient(cfg.Endpoint, graphql.WithHTTPClient(httpClient)),
		endpoint:  cfg.Endpoint,
		logger:    logger.WithComponent(log.ComponentClient),
		snapshots: cache.NewStore[any](),
	}, nil
}

// Endpoint returns the configured GraphQL endpoint.
func (c *Client) Endpoint() string { return c.endpoint }

// run executes one operation document and decodes the data object into out.
func (c *Client) run(ctx context.Context, op contract.Operation, doc string, vars map[string]any, out any) error {
	req := graphql.NewRequest(doc)
	for k, v := range vars {
		req.Var(k, v)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	err := c.gql.Run(ctx, req, out)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		c.logger.Debug("operation failed",
			log.FieldOperation, string(op),
			log.FieldRequestID, reqID,
			log.FieldDuration, elapsed,
			log.FieldError, err.Error(),
		)
		return backendError(err)
	}
	c.logger.Debug("operation ok",
		log.FieldOperation, string(op),
		log.FieldRequestID, reqID,
		log.FieldDuration, elapsed,
	)
	return nil
}

// backendError keeps the server-reported message text intact; only the
// transport library's own prefix is stripped so the user sees the message
// verbatim. Operation context lives in the debug log, not in the message.
func backendError(err error) error {
	return errors.New(strings.TrimPrefix(err.Error(), "graphql: "))
}

// snapshotKey builds the cache key for an operation and its variables.
func snapshotKey(op contract.Operation, vars map[string]any) string {
	if len(vars) == 0 {
		return string(op)
	}
	b, _ := json.Marshal(vars) // map keys marshal sorted
	return string(op) + ":" + string(b)
}

// ListAccounts fetches every account and snapshots the result.
func (c *Client) ListAccounts(ctx context.Context) ([]contract.Account, error) {
	var resp struct {
		Accounts []contract.Account `json:"accounts"`
	}
	if err := c.run(ctx, contract.OpListAccounts, contract.DocListAccounts, nil, &resp); err != nil {
		return nil, err
	}
	c.snapshots.Set(snapshotKey(contract.OpListAccounts, nil), resp.Accounts)
	return resp.Accounts, nil
}

// Account fetches one account by id. A null response maps to
// contract.ErrNotFound.
func (c *Client) Account(ctx context.Context, id string) (contract.Account, error) {
	var resp struct {
		Account *contract.Account `json:"account"`
	}
	vars := map[string]any{"id": id}
	if err := c.run(ctx, contract.OpGetAccount, contract.DocGetAccount, vars, &resp); err != nil {
		return contract.Account{}, err
	}
	if resp.Account == nil {
		return contract.Account{}, fmt.Errorf("%s %q: %w", contract.OpGetAccount, id, contract.ErrNotFound)
	}
	c.snapshots.Set(snapshotKey(contract.OpGetAccount, vars), *resp.Account)
	return *resp.Account, nil
}

// AccountStats fetches balance statistics across all accounts.
func (c *Client) AccountStats(ctx context.Context) (contract.AccountStats, error) {
	var resp struct {
		AccountStats contract.AccountStats `json:"accountStats"`
	}
	if err := c.run(ctx, contract.OpAccountStats, contract.DocAccountStats, nil, &resp); err != nil {
		return contract.AccountStats{}, err
	}
	c.snapshots.Set(snapshotKey(contract.OpAccountStats, nil), resp.AccountStats)
	return resp.AccountStats, nil
}

// AccountsByKind fetches the accounts of one kind.
func (c *Client) AccountsByKind(ctx context.Context, kind contract.AccountKind) ([]contract.Account, error) {
	var resp struct {
		AccountsByType []contract.Account `json:"accountsByType"`
	}
	vars := map[string]any{"type": string(kind)}
	if err := c.run(ctx, contract.OpAccountsByKind, contract.DocAccountsByKind, vars, &resp); err != nil {
		return nil, err
	}
	c.snapshots.Set(snapshotKey(contract.OpAccountsByKind, vars), resp.AccountsByType)
	return resp.AccountsByType, nil
}

// AccountTransactions fetches the transactions of one account.
func (c *Client) AccountTransactions(ctx context.Context, accountID string) ([]contract.Transaction, error) {
	var resp struct {
		AccountTransactions []contract.Transaction `json:"accountTransactions"`
	}
	vars := map[string]any{"accountId": accountID}
	if err := c.run(ctx, contract.OpAccountTransactions, contract.DocAccountTransactions, vars, &resp); err != nil {
		return nil, err
	}
	c.snapshots.Set(snapshotKey(contract.OpAccountTransactions, vars), resp.AccountTransactions)
	return resp.AccountTransactions, nil
}

// ListTransactions fetches every transaction and snapshots the result.
func (c *Client) ListTransactions(ctx context.Context) ([]contract.Transaction, error) {
	var resp struct {
		AllTransactions []contract.Transaction `json:"allTransactions"`
	}
	if err := c.run(ctx, contract.OpListTransactions, contract.DocListTransactions, nil, &resp); err != nil {
		return nil, err
	}
	c.snapshots.Set(snapshotKey(contract.OpListTransactions, nil), resp.AllTransactions)
	return resp.AllTransactions, nil
}

// TransactionStats fetches transaction statistics.
func (c *Client) TransactionStats(ctx context.Context) (contract.TransactionStats, error) {
	var resp struct {
		TransactionStats contract.TransactionStats `json:"transactionStats"`
	}
	if err := c.run(ctx, contract.OpTransactionStats, contract.DocTransactionStats, nil, &resp); err != nil {
		return contract.TransactionStats{}, err
	}
	c.snapshots.Set(snapshotKey(contract.OpTransactionStats, nil), resp.TransactionStats)
	return resp.TransactionStats, nil
}

// CreateAccount validates the input client-side, then creates the account.
// The response carries the server-assigned id and creation date.
func (c *Client) CreateAccount(ctx context.Context, in contract.CreateAccountInput) (contract.Account, error) {
	if err := in.Validate(); err != nil {
		return contract.Account{}, err
	}
	var resp struct {
		CreateAccount contract.Account `json:"createAccount"`
	}
	vars := map[string]any{
		"balance": in.Balance.InexactFloat64(),
		"type":    string(in.Kind),
	}
	if err := c.run(ctx, contract.OpCreateAccount, contract.DocCreateAccount, vars, &resp); err != nil {
		return contract.Account{}, err
	}
	return resp.CreateAccount, nil
}

// DeleteAccount deletes one account by id.
func (c *Client) DeleteAccount(ctx context.Context, id string) (bool, error) {
	var resp struct {
		DeleteAccount bool `json:"deleteAccount"`
	}
	vars := map[string]any{"id": id}
	if err := c.run(ctx, contract.OpDeleteAccount, contract.DocDeleteAccount, vars, &resp); err != nil {
		return false, err
	}
	return resp.DeleteAccount, nil
}

// RecordTransaction validates the input client-side, then records the
// transaction. The embedded account in the response already shows the
// post-transaction balance.
func (c *Client) RecordTransaction(ctx context.Context, in contract.RecordTransactionInput) (contract.Transaction, error) {
	if err := in.Validate(); err != nil {
		return contract.Transaction{}, err
	}
	var resp struct {
		CreateTransaction contract.Transaction `json:"createTransaction"`
	}
	vars := map[string]any{
		"type":      string(in.Kind),
		"amount":    in.Amount.InexactFloat64(),
		"accountId": in.AccountID,
	}
	if err := c.run(ctx, contract.OpRecordTransaction, contract.DocRecordTransaction, vars, &resp); err != nil {
		return contract.Transaction{}, err
	}
	return resp.CreateTransaction, nil
}

// CachedAccounts returns the latest ListAccounts snapshot without touching
// the network.
func (c *Client) CachedAccounts() ([]contract.Account, bool) {
	v, ok := c.snapshots.Get(snapshotKey(contract.OpListAccounts, nil))
	if !ok {
		return nil, false
	}
	accounts, ok := v.([]contract.Account)
	return accounts, ok
}

// CachedTransactions returns the latest ListTransactions snapshot without
// touching the network.
func (c *Client) CachedTransactions() ([]contract.Transaction, bool) {
	v, ok := c.snapshots.Get(snapshotKey(contract.OpListTransactions, nil))
	if !ok {
		return nil, false
	}
	txs, ok := v.([]contract.Transaction)
	return txs, ok
}

// Refetch re-issues a variable-free read, refreshing its snapshot. Used for
// manual refreshes and for the refetch bindings after a write.
func (c *Client) Refetch(ctx context.Context, op contract.Operation) error {
	switch op {
	case contract.OpListAccounts:
		_, err := c.ListAccounts(ctx)
		return err
	case contract.OpListTransactions:
		_, err := c.ListTransactions(ctx)
		return err
	case contract.OpAccountStats:
		_, err := c.AccountStats(ctx)
		return err
	case contract.OpTransactionStats:
		_, err := c.TransactionStats(ctx)
		return err
	}
	return fmt.Errorf("operation %s is not refetchable", op)
}
