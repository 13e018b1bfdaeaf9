// Package leaderboard serves the dashboard's placeholder leaderboard.
// There is no backend behind it; a real ranking service is explicitly
// out of scope.
package leaderboard

// Entry is one leaderboard row.
type Entry struct {
	Rank    int    `json:"rank"`
	Handle  string `json:"handle"`
	Address string `json:"address"`
	Score   int    `json:"score"`
}

var entries = []Entry{
	{Rank: 1, Handle: "nad_whale", Address: "0x1a9C8182C09F50C8318d769245beA52c32BE35BC", Score: 9820},
	{Rank: 2, Handle: "gmonad", Address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", Score: 9455},
	{Rank: 3, Handle: "purple_pepe", Address: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", Score: 8990},
	{Rank: 4, Handle: "testnet_andy", Address: "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB", Score: 8421},
	{Rank: 5, Handle: "molandak", Address: "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb", Score: 7781},
	{Rank: 6, Handle: "keccak_steve", Address: "0x7c2C195CD6D34B8F845992d380aADB2730bB9C6F", Score: 7134},
	{Rank: 7, Handle: "block_hopper", Address: "0x8C1f2A27C254684bF8a2a59c6F9F64C8cF9C3b37", Score: 6612},
	{Rank: 8, Handle: "gas_goblin", Address: "0x2fDEf5BbBB1eAE1a1e9d2F3A5Bd7f1e8A6c09B24", Score: 6105},
	{Rank: 9, Handle: "nonce_sense", Address: "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1", Score: 5544},
	{Rank: 10, Handle: "wen_mainnet", Address: "0xFFcf8FDEE72ac11b5c542428B35EEF5769C409f0", Score: 5021},
}

// Top returns the first n entries, or all of them when n is out of range.
func Top(n int) []Entry {
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	out := make([]Entry, n)
	copy(out, entries[:n])
	return out
}
