package state_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/mycoinlabs/mycoin/foundation/ledger/database"
	"github.com/mycoinlabs/mycoin/foundation/ledger/genesis"
	"github.com/mycoinlabs/mycoin/foundation/ledger/state"
	"github.com/mycoinlabs/mycoin/foundation/ledger/storage/memory"
	"github.com/shopspring/decimal"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_SendTransaction(t *testing.T) {
	ctx := context.Background()

	gen := testGenesis("100", 4)
	engine, strg := testState(t, gen)

	t.Log("Given the need to process a funded transfer end to end.")
	{
		sender, err := engine.CreateWallet(ctx, "alice-secret")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to create the sending wallet: %v", failed, err)
		}
		recipient, err := engine.CreateWallet(ctx, "bob-secret")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to create the receiving wallet: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to create both wallets.", success)

		amount := decimal.RequireFromString("10")
		receipt, err := engine.SendTransaction(ctx, sender.Address, recipient.Address, amount, sender.Secret)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to send the transaction: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to send the transaction.", success)

		if receipt.BlockNumber != 1 {
			t.Errorf("\t%s\tShould seal the transfer into block 1: got %d", failed, receipt.BlockNumber)
		} else {
			t.Logf("\t%s\tShould seal the transfer into block 1.", success)
		}

		if !strings.HasPrefix(receipt.BlockHash, "0000") {
			t.Errorf("\t%s\tShould produce a block hash with four leading zeros: got %s", failed, receipt.BlockHash)
		} else {
			t.Logf("\t%s\tShould produce a block hash with four leading zeros.", success)
		}

		balA, err := engine.QueryBalance(ctx, sender.Address)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to query the sender balance: %v", failed, err)
		}
		if !balA.Balance.Equal(decimal.RequireFromString("89.999")) {
			t.Errorf("\t%s\tShould debit amount plus fee from the sender: got %s, exp 89.999", failed, balA.Balance)
		} else {
			t.Logf("\t%s\tShould debit amount plus fee from the sender.", success)
		}

		balB, err := engine.QueryBalance(ctx, recipient.Address)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to query the recipient balance: %v", failed, err)
		}
		if !balB.Balance.Equal(decimal.RequireFromString("110")) {
			t.Errorf("\t%s\tShould credit the amount to the recipient: got %s, exp 110", failed, balB.Balance)
		} else {
			t.Logf("\t%s\tShould credit the amount to the recipient.", success)
		}

		tx, err := engine.QueryTranByHash(ctx, receipt.TranHash)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to look the transaction up by hash: %v", failed, err)
		}
		if tx.Status != database.StatusConfirmed || tx.BlockNumber != receipt.BlockNumber {
			t.Errorf("\t%s\tShould confirm the transaction with its block number: got %s/%d", failed, tx.Status, tx.BlockNumber)
		} else {
			t.Logf("\t%s\tShould confirm the transaction with its block number.", success)
		}

		rehash := database.TxHash(tx.FromID, tx.ToID, tx.Value, tx.TimeStamp)
		if rehash != tx.Hash {
			t.Errorf("\t%s\tShould rehash the stored transaction to its hash: got %s, exp %s", failed, rehash, tx.Hash)
		} else {
			t.Logf("\t%s\tShould rehash the stored transaction to its hash.", success)
		}

		blocks := strg.Blocks()
		if len(blocks) != 1 {
			t.Fatalf("\t%s\tShould have mined exactly one block: got %d", failed, len(blocks))
		}
		block := blocks[0]

		if block.PrevBlockHash != database.ZeroHash {
			t.Errorf("\t%s\tShould link the first block to the zero hash: got %s", failed, block.PrevBlockHash)
		} else {
			t.Logf("\t%s\tShould link the first block to the zero hash.", success)
		}

		// A confirmed transaction changes status and block number, so
		// the mined payload is reconstructed in its pending form.
		pending := tx
		pending.Status = database.StatusPending
		pending.BlockNumber = 0

		solution, err := database.Solution(block.PrevBlockHash, []database.Tx{pending}, block.Nonce)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to recompute the block solution: %v", failed, err)
		}
		if solution != block.Hash {
			t.Errorf("\t%s\tShould verify the proof of work from stored fields: got %s, exp %s", failed, solution, block.Hash)
		} else {
			t.Logf("\t%s\tShould verify the proof of work from stored fields.", success)
		}
	}
}

func Test_SendTransactionRejections(t *testing.T) {
	ctx := context.Background()

	t.Log("Given the need to reject transfers before anything is written.")
	{
		t.Logf("\tWhen the sender cannot cover amount plus fee.")
		{
			gen := testGenesis("0.5", 1)
			engine, strg := testState(t, gen)

			sender, _ := engine.CreateWallet(ctx, "alice-secret")
			recipient, _ := engine.CreateWallet(ctx, "bob-secret")

			_, err := engine.SendTransaction(ctx, sender.Address, recipient.Address, decimal.RequireFromString("1"), sender.Secret)
			if err != state.ErrInsufficientBalance {
				t.Errorf("\t%s\tShould fail with ErrInsufficientBalance: got %v", failed, err)
			} else {
				t.Logf("\t%s\tShould fail with ErrInsufficientBalance.", success)
			}

			assertNoWrites(ctx, t, engine, strg, sender.Address, recipient.Address, "0.5")
		}

		t.Logf("\tWhen the secret does not derive the sending address.")
		{
			gen := testGenesis("100", 1)
			engine, strg := testState(t, gen)

			sender, _ := engine.CreateWallet(ctx, "alice-secret")
			recipient, _ := engine.CreateWallet(ctx, "bob-secret")

			_, err := engine.SendTransaction(ctx, sender.Address, recipient.Address, decimal.RequireFromString("1"), "bob-secret")
			if err != state.ErrNotAuthorized {
				t.Errorf("\t%s\tShould fail with ErrNotAuthorized: got %v", failed, err)
			} else {
				t.Logf("\t%s\tShould fail with ErrNotAuthorized.", success)
			}

			assertNoWrites(ctx, t, engine, strg, sender.Address, recipient.Address, "100")
		}

		t.Logf("\tWhen the amount is not positive.")
		{
			gen := testGenesis("100", 1)
			engine, _ := testState(t, gen)

			sender, _ := engine.CreateWallet(ctx, "alice-secret")
			recipient, _ := engine.CreateWallet(ctx, "bob-secret")

			_, err := engine.SendTransaction(ctx, sender.Address, recipient.Address, decimal.Zero, sender.Secret)
			if err != state.ErrInvalidAmount {
				t.Errorf("\t%s\tShould fail with ErrInvalidAmount: got %v", failed, err)
			} else {
				t.Logf("\t%s\tShould fail with ErrInvalidAmount.", success)
			}
		}

		t.Logf("\tWhen the recipient wallet does not exist.")
		{
			gen := testGenesis("100", 1)
			engine, _ := testState(t, gen)

			sender, _ := engine.CreateWallet(ctx, "alice-secret")

			_, err := engine.SendTransaction(ctx, sender.Address, "MCmissing", decimal.RequireFromString("1"), sender.Secret)
			if err != state.ErrRecipientNotFound {
				t.Errorf("\t%s\tShould fail with ErrRecipientNotFound: got %v", failed, err)
			} else {
				t.Logf("\t%s\tShould fail with ErrRecipientNotFound.", success)
			}
		}
	}
}

func Test_ChainLinkage(t *testing.T) {
	ctx := context.Background()

	gen := testGenesis("100", 1)
	engine, strg := testState(t, gen)

	t.Log("Given the need to keep the chain a gapless linked list.")
	{
		sender, _ := engine.CreateWallet(ctx, "alice-secret")
		recipient, _ := engine.CreateWallet(ctx, "bob-secret")

		// Distinct amounts keep the transaction hashes distinct even when
		// sends land in the same millisecond.
		for i := 0; i < 3; i++ {
			amount := decimal.NewFromInt(int64(i) + 1)
			if _, err := engine.SendTransaction(ctx, sender.Address, recipient.Address, amount, sender.Secret); err != nil {
				t.Fatalf("\t%s\tShould be able to send transfer %d: %v", failed, i+1, err)
			}
		}
		t.Logf("\t%s\tShould be able to send three transfers.", success)

		blocks := strg.Blocks()
		if len(blocks) != 3 {
			t.Fatalf("\t%s\tShould have three blocks: got %d", failed, len(blocks))
		}

		prevHash := database.ZeroHash
		for i, block := range blocks {
			if block.Number != uint64(i)+1 {
				t.Errorf("\t%s\tShould number block %d as %d: got %d", failed, i, i+1, block.Number)
			}
			if block.PrevBlockHash != prevHash {
				t.Errorf("\t%s\tShould link block %d to its parent: got %s, exp %s", failed, block.Number, block.PrevBlockHash, prevHash)
			}
			if !database.IsHashSolved(gen.Difficulty, block.Hash) {
				t.Errorf("\t%s\tShould have solved block %d: got %s", failed, block.Number, block.Hash)
			}
			prevHash = block.Hash
		}
		t.Logf("\t%s\tShould link every block to its parent with gapless numbering.", success)

		// The fee is burned, so the system total drops by exactly three
		// fees.
		balA, _ := engine.QueryBalance(ctx, sender.Address)
		balB, _ := engine.QueryBalance(ctx, recipient.Address)
		sum := balA.Balance.Add(balB.Balance)
		if !sum.Equal(decimal.RequireFromString("199.997")) {
			t.Errorf("\t%s\tShould burn exactly the fees from the system total: got %s, exp 199.997", failed, sum)
		} else {
			t.Logf("\t%s\tShould burn exactly the fees from the system total.", success)
		}
	}
}

func Test_SelfSend(t *testing.T) {
	ctx := context.Background()

	gen := testGenesis("100", 1)
	engine, _ := testState(t, gen)

	t.Log("Given the need to allow a wallet to send to itself.")
	{
		sender, _ := engine.CreateWallet(ctx, "alice-secret")

		if _, err := engine.SendTransaction(ctx, sender.Address, sender.Address, decimal.RequireFromString("5"), sender.Secret); err != nil {
			t.Fatalf("\t%s\tShould be able to self send: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to self send.", success)

		bal, _ := engine.QueryBalance(ctx, sender.Address)
		if !bal.Balance.Equal(decimal.RequireFromString("99.999")) {
			t.Errorf("\t%s\tShould pay only the fee on a self send: got %s, exp 99.999", failed, bal.Balance)
		} else {
			t.Logf("\t%s\tShould pay only the fee on a self send.", success)
		}
	}
}

func Test_ConcurrentSends(t *testing.T) {
	ctx := context.Background()

	gen := testGenesis("10", 1)
	engine, strg := testState(t, gen)

	t.Log("Given the need to settle concurrent transfers from one wallet.")
	{
		sender, _ := engine.CreateWallet(ctx, "alice-secret")
		recipient, _ := engine.CreateWallet(ctx, "bob-secret")

		amount := decimal.RequireFromString("6")
		results := make([]error, 2)

		var wg sync.WaitGroup
		wg.Add(2)
		for i := 0; i < 2; i++ {
			go func(i int) {
				defer wg.Done()
				_, results[i] = engine.SendTransaction(ctx, sender.Address, recipient.Address, amount, sender.Secret)
			}(i)
		}
		wg.Wait()

		var oks, insufficient int
		for _, err := range results {
			switch err {
			case nil:
				oks++
			case state.ErrInsufficientBalance:
				insufficient++
			default:
				t.Fatalf("\t%s\tShould fail only with ErrInsufficientBalance: got %v", failed, err)
			}
		}

		if oks != 1 || insufficient != 1 {
			t.Fatalf("\t%s\tShould settle exactly one transfer: got %d ok, %d insufficient", failed, oks, insufficient)
		}
		t.Logf("\t%s\tShould settle exactly one transfer.", success)

		balA, _ := engine.QueryBalance(ctx, sender.Address)
		if !balA.Balance.Equal(decimal.RequireFromString("3.999")) {
			t.Errorf("\t%s\tShould debit the sender exactly once: got %s, exp 3.999", failed, balA.Balance)
		} else {
			t.Logf("\t%s\tShould debit the sender exactly once.", success)
		}

		if len(strg.Blocks()) != 1 {
			t.Errorf("\t%s\tShould have mined exactly one block: got %d", failed, len(strg.Blocks()))
		} else {
			t.Logf("\t%s\tShould have mined exactly one block.", success)
		}
	}
}

func Test_WalletAccess(t *testing.T) {
	ctx := context.Background()

	gen := testGenesis("100", 1)
	engine, _ := testState(t, gen)

	t.Log("Given the need to resolve wallets from secrets alone.")
	{
		created, err := engine.CreateWallet(ctx, "")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to create a wallet with a generated secret: %v", failed, err)
		}
		if created.Secret == "" {
			t.Fatalf("\t%s\tShould return the generated secret to the caller.", failed)
		}
		t.Logf("\t%s\tShould be able to create a wallet with a generated secret.", success)

		address, err := engine.AccessWallet(ctx, created.Secret)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to access the wallet with its secret: %v", failed, err)
		}
		if address != created.Address {
			t.Errorf("\t%s\tShould resolve the secret to the same address: got %s, exp %s", failed, address, created.Address)
		} else {
			t.Logf("\t%s\tShould resolve the secret to the same address.", success)
		}

		if _, err := engine.AccessWallet(ctx, "never-created"); err != state.ErrWalletNotFound {
			t.Errorf("\t%s\tShould fail with ErrWalletNotFound for an unknown secret: got %v", failed, err)
		} else {
			t.Logf("\t%s\tShould fail with ErrWalletNotFound for an unknown secret.", success)
		}
	}
}

func Test_QueryBalanceRecentLimit(t *testing.T) {
	ctx := context.Background()

	gen := testGenesis("100", 1)
	engine, _ := testState(t, gen)

	t.Log("Given the need to cap the activity returned with a balance.")
	{
		sender, _ := engine.CreateWallet(ctx, "alice-secret")
		recipient, _ := engine.CreateWallet(ctx, "bob-secret")

		// Distinct amounts keep the transaction hashes distinct even when
		// sends land in the same millisecond.
		for i := 0; i < 12; i++ {
			amount := decimal.New(int64(i)+1, -2)
			if _, err := engine.SendTransaction(ctx, sender.Address, recipient.Address, amount, sender.Secret); err != nil {
				t.Fatalf("\t%s\tShould be able to send transfer %d: %v", failed, i+1, err)
			}
		}

		bal, err := engine.QueryBalance(ctx, sender.Address)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to query the balance: %v", failed, err)
		}
		if len(bal.Transactions) != 10 {
			t.Errorf("\t%s\tShould return at most ten recent transactions: got %d", failed, len(bal.Transactions))
		} else {
			t.Logf("\t%s\tShould return at most ten recent transactions.", success)
		}

		trans, err := engine.QueryTransactions(ctx, sender.Address)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to query all transactions: %v", failed, err)
		}
		if len(trans) != 12 {
			t.Errorf("\t%s\tShould return the full history from the list query: got %d", failed, len(trans))
		} else {
			t.Logf("\t%s\tShould return the full history from the list query.", success)
		}

		for i := 1; i < len(trans); i++ {
			if trans[i].TimeStamp.After(trans[i-1].TimeStamp) {
				t.Fatalf("\t%s\tShould order transactions newest first.", failed)
			}
		}
		t.Logf("\t%s\tShould order transactions newest first.", success)
	}
}

// =============================================================================

func testGenesis(openingBalance string, difficulty int) genesis.Genesis {
	return genesis.Genesis{
		ChainName:      "mycoin-test",
		Difficulty:     difficulty,
		TransactionFee: decimal.RequireFromString("0.001"),
		OpeningBalance: decimal.RequireFromString(openingBalance),
	}
}

func testState(t *testing.T, gen genesis.Genesis) (*state.State, *memory.Memory) {
	t.Helper()

	strg, err := memory.New()
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct storage: %v", failed, err)
	}

	engine, err := state.New(state.Config{
		Genesis: gen,
		Storage: strg,
	})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the engine: %v", failed, err)
	}

	return engine, strg
}

func assertNoWrites(ctx context.Context, t *testing.T, engine *state.State, strg *memory.Memory, sender string, recipient string, openingBalance string) {
	t.Helper()

	balA, err := engine.QueryBalance(ctx, sender)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to query the sender balance: %v", failed, err)
	}
	if !balA.Balance.Equal(decimal.RequireFromString(openingBalance)) {
		t.Errorf("\t%s\tShould leave the sender balance unchanged: got %s", failed, balA.Balance)
	} else {
		t.Logf("\t%s\tShould leave the sender balance unchanged.", success)
	}

	trans, err := engine.QueryTransactions(ctx, sender)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to query transactions: %v", failed, err)
	}
	if len(trans) != 0 {
		t.Errorf("\t%s\tShould create no transaction records: got %d", failed, len(trans))
	} else {
		t.Logf("\t%s\tShould create no transaction records.", success)
	}

	if len(strg.Blocks()) != 0 {
		t.Errorf("\t%s\tShould create no block records: got %d", failed, len(strg.Blocks()))
	} else {
		t.Logf("\t%s\tShould create no block records.", success)
	}
}
