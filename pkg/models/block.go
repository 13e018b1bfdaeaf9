package models

// Block is a retrieved block reduced to what the window scan consumes:
// its height, its timestamp and its full transaction list.
type Block struct {
	Number uint64
	Time   uint64 // unix seconds
	Txs    []Tx
}
