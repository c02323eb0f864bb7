package contract

// Operation identifies one query or mutation of the backend contract.
type Operation string

const (
	OpListAccounts        Operation = "accounts"
	OpGetAccount          Operation = "account"
	OpAccountStats        Operation = "accountStats"
	OpAccountsByKind      Operation = "accountsByType"
	OpAccountTransactions Operation = "accountTransactions"
	OpListTransactions    Operation = "allTransactions"
	OpTransactionStats    Operation = "transactionStats"
	OpCreateAccount       Operation = "createAccount"
	OpDeleteAccount       Operation = "deleteAccount"
	OpRecordTransaction   Operation = "createTransaction"
)

// IsWrite reports whether the operation mutates backend state.
func (op Operation) IsWrite() bool {
	switch op {
	case OpCreateAccount, OpDeleteAccount, OpRecordTransaction:
		return true
	}
	return false
}

const accountFields = `id balance type createdAt`

const transactionFields = `id type amount date account { ` + accountFields + ` }`

// GraphQL documents, one per operation. Field selections are fixed: the
// client always asks for the full record shape it decodes into.
const (
	DocListAccounts = `query Accounts { accounts { ` + accountFields + ` } }`

	DocGetAccount = `query Account($id: ID!) { account(id: $id) { ` + accountFields + ` } }`

	DocAccountStats = `query AccountStats { accountStats { count sum average } }`

	DocAccountsByKind = `query AccountsByType($type: AccountType!) { accountsByType(type: $type) { ` + accountFields + ` } }`

	DocAccountTransactions = `query AccountTransactions($accountId: ID!) { accountTransactions(accountId: $accountId) { ` + transactionFields + ` } }`

	DocListTransactions = `query AllTransactions { allTransactions { ` + transactionFields + ` } }`

	DocTransactionStats = `query TransactionStats { transactionStats { count sumDeposits sumWithdrawals } }`

	DocCreateAccount = `mutation CreateAccount($balance: Float!, $type: AccountType!) {
  createAccount(balance: $balance, type: $type) { ` + accountFields + ` }
}`

	DocDeleteAccount = `mutation DeleteAccount($id: ID!) { deleteAccount(id: $id) }`

	DocRecordTransaction = `mutation CreateTransaction($type: TransactionType!, $amount: Float!, $accountId: ID!) {
  createTransaction(type: $type, amount: $amount, accountId: $accountId) { ` + transactionFields + ` }
}`
)
