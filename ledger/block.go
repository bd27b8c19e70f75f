package ledger

// Block is one recorded round in the ledger.
type Block struct {
	Index     int         `json:"index"`
	Timestamp int64       `json:"timestamp"`
	PrevHash  string      `json:"prev_hash"`
	Hash      string      `json:"hash"`
	Round     interface{} `json:"round"` // round outcome, hashed as JSON
	Metadata  Metadata    `json:"metadata"`
}

type Metadata struct {
	Extra map[string]string `json:"extra,omitempty"`
}
