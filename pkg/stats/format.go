package stats

import (
	"math/big"
	"strings"
)

// Decimals is the native token's unit scale (wei per whole token).
const Decimals = 18

var unitScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// FormatWei renders a wei amount as a decimal native-token string without
// going through floating point, so values beyond float64 precision stay
// exact. Trailing zeros in the fraction are trimmed: 5e18 -> "5",
// 21000e9 -> "0.000021".
func FormatWei(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0"
	}

	quo, rem := new(big.Int).QuoRem(wei, unitScale, new(big.Int))
	if rem.Sign() == 0 {
		return quo.String()
	}

	frac := rem.String()
	if pad := Decimals - len(frac); pad > 0 {
		frac = strings.Repeat("0", pad) + frac
	}
	frac = strings.TrimRight(frac, "0")
	return quo.String() + "." + frac
}
