package database

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"
)

// ZeroHash represents a hash code of zeros. It is the previous hash of
// the first block in the chain.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// =============================================================================

// Block represents a mined block linking the chain together. A block is
// immutable once mined; its number is one greater than the number of the
// block its previous hash points at.
type Block struct {
	Number        uint64    `json:"block_number"`
	Hash          string    `json:"hash"`
	PrevBlockHash string    `json:"previous_hash"`
	TransHashes   []string  `json:"transactions"`
	TimeStamp     time.Time `json:"timestamp"`
	Nonce         uint64    `json:"nonce"`
	Difficulty    int       `json:"difficulty"`
}

// POW performs the proof of work search. Starting from a nonce of zero it
// hashes the previous block hash, the canonical serialization of the
// transaction payload and the candidate nonce until the digest carries
// difficulty leading zero characters. A solution is guaranteed in
// expectation at practical difficulties, so the only early return is
// caller cancellation, checked between batches of attempts.
func POW(ctx context.Context, prevBlockHash string, trans []Tx, difficulty int, ev func(v string, args ...any)) (hash string, nonce uint64, err error) {
	ev("database: POW: mining: started: prevBlk[%s]", prevBlockHash)
	defer ev("database: POW: mining: completed")

	payload, err := canonicalSerialize(trans)
	if err != nil {
		return "", 0, err
	}

	for nonce = 0; ; nonce++ {
		if nonce%100_000 == 0 && ctx.Err() != nil {
			ev("database: POW: mining: cancelled")
			return "", 0, ctx.Err()
		}

		hash = candidateHash(prevBlockHash, payload, nonce)
		if IsHashSolved(difficulty, hash) {
			ev("database: POW: mining: solved: newBlk[%s]: attempts[%d]", hash, nonce+1)
			return hash, nonce, nil
		}
	}
}

// Solution recomputes the block hash for the stored fields of a mined
// block. A valid block satisfies Solution == Hash.
func Solution(prevBlockHash string, trans []Tx, nonce uint64) (string, error) {
	payload, err := canonicalSerialize(trans)
	if err != nil {
		return "", err
	}

	return candidateHash(prevBlockHash, payload, nonce), nil
}

// IsHashSolved checks the hash to make sure it complies with the POW
// rules. We need to match a difficulty number of 0's.
func IsHashSolved(difficulty int, hash string) bool {
	const match = "00000000000000000"

	if len(hash) != 64 || difficulty < 1 || difficulty > len(match) {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}

// =============================================================================

// candidateHash computes the block hash for one candidate nonce.
func candidateHash(prevBlockHash string, payload []byte, nonce uint64) string {
	data := prevBlockHash + string(payload) + strconv.FormatUint(nonce, 10)
	hash := sha256.Sum256([]byte(data))

	return hex.EncodeToString(hash[:])
}

// canonicalSerialize produces a stable, order preserving encoding of the
// transaction payload so two calls with the same logical input always
// hash identically.
func canonicalSerialize(trans []Tx) ([]byte, error) {
	return json.Marshal(trans)
}
