package b

import (
	"math/big"
)

var (
	E27 = big.NewInt(0).Exp(D10, D27, nil)
)
