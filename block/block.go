package block

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"zakatchain/config"
	"zakatchain/entry"
)

// Block is a sealed, hash-linked batch of entries. Index 0 is the genesis
// block; its hash is accepted as computed and never mined. All other
// blocks are mutated only by Seal, and only in their Nonce and Hash
// fields, until the difficulty target is met.
type Block struct {
	Index     uint64        // position in the chain, contiguous from 0
	Entries   []entry.Entry // insertion order is settlement order
	PrevHash  string        // seal hash of the previous block, "0" for genesis
	SeedKey   string        // ledger creator's id, identical for every block
	Timestamp time.Time
	Nonce     uint64
	Hash      string // hex sha256 seal hash
}

// Assemble builds a block over the given entries and stamps it with its
// initial hash at nonce 0.
func Assemble(index uint64, entries []entry.Entry, prevHash, seedKey string) *Block {
	b := &Block{
		Index:     index,
		Entries:   entries,
		PrevHash:  prevHash,
		SeedKey:   seedKey,
		Timestamp: time.Now(),
	}
	b.Hash = b.ComputeHash()
	return b
}

// ComputeHash derives the seal hash from the block's own fields. The seed
// key leads the preimage so that two chains with different creators can
// never produce colliding hashes for structurally identical blocks.
func (b *Block) ComputeHash() string {
	h := sha256.New()
	buf := make([]byte, 8)

	h.Write([]byte(b.SeedKey))
	binary.BigEndian.PutUint64(buf, b.Index)
	h.Write(buf)
	for _, e := range b.Entries {
		h.Write(e.Serialize())
	}
	h.Write([]byte(b.PrevHash))
	h.Write([]byte(b.Timestamp.Format(config.TimeLayout)))
	binary.BigEndian.PutUint64(buf, b.Nonce)
	h.Write(buf)

	return hex.EncodeToString(h.Sum(nil))
}

// Seal runs the proof-of-work search: increment the nonce and recompute
// the hash until it carries difficulty leading zero hex characters. The
// search is a plain brute-force loop, expected 16^difficulty iterations.
// It blocks the caller and offers no interruption point.
func (b *Block) Seal(difficulty int) {
	target := strings.Repeat("0", difficulty)
	for !strings.HasPrefix(b.Hash, target) {
		b.Nonce++
		b.Hash = b.ComputeHash()
	}
}

// MeetsDifficulty reports whether the stored hash satisfies the target
// prefix. Difficulty 0 is always met.
func (b *Block) MeetsDifficulty(difficulty int) bool {
	return strings.HasPrefix(b.Hash, strings.Repeat("0", difficulty))
}

// Export is the stable snapshot form of a block.
type Export struct {
	Index    uint64         `json:"index"`
	Entries  []entry.Export `json:"entries"`
	PrevHash string         `json:"previous_hash"`
	SeedKey  string         `json:"seed_key"`
	Time     string         `json:"timestamp"`
	Nonce    uint64         `json:"nonce"`
	Hash     string         `json:"hash"`
}

// ToExport converts the block for snapshot serialization.
func (b *Block) ToExport() Export {
	entries := make([]entry.Export, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, e.ToExport())
	}
	return Export{
		Index:    b.Index,
		Entries:  entries,
		PrevHash: b.PrevHash,
		SeedKey:  b.SeedKey,
		Time:     b.Timestamp.Format(config.TimeLayout),
		Nonce:    b.Nonce,
		Hash:     b.Hash,
	}
}
