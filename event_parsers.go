package uniswap_v3_math

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	TOPIC_INITIALIZE = common.HexToHash("0x98636036cb66a9c19a37435efc1e90142190214e8abeb821bdba3f2990dd4c95")
	TOPIC_SWAP       = common.HexToHash("0xc42079f94a6350d7e6235f29174924f928cc2ac818eb64fed8004e115fbcca67")
)

type UniV3InitializeEvent struct {
	RawEvent     *types.Log `json:"raw_event"`
	SqrtPriceX96 *big.Int   `json:"sqrt_price_x96"`
	Tick         int        `json:"tick"`
}

type UniV3SwapEvent struct {
	RawEvent     *types.Log `json:"raw_event"`
	Sender       string     `json:"sender"`
	Recipient    string     `json:"to"`
	Amount0      *big.Int   `json:"amount0"`
	Amount1      *big.Int   `json:"amount1"`
	SqrtPriceX96 *big.Int   `json:"sqrt_price_x96"`
	Liquidity    *big.Int   `json:"liquidity"`
	Tick         int        `json:"tick"`
}

// ZeroForOne reports whether token0 was sold into the pool.
func (e *UniV3SwapEvent) ZeroForOne() bool {
	return e.Amount0.Sign() > 0
}

var (
	int24, _   = abi.NewType("int24", "", nil)
	int256, _  = abi.NewType("int256", "", nil)
	uint160, _ = abi.NewType("uint160", "", nil)
	uint128, _ = abi.NewType("uint128", "", nil)

	initializeEventData = abi.Arguments{
		{Name: "sqrtPriceX96", Type: uint160},
		{Name: "tick", Type: int24},
	}
	swapEventData = abi.Arguments{
		{Name: "amount0", Type: int256},
		{Name: "amount1", Type: int256},
		{Name: "sqrtPriceX96", Type: uint160},
		{Name: "liquidity", Type: uint128},
		{Name: "tick", Type: int24},
	}
)

func checkTopics(log *types.Log, topic common.Hash, count int) error {
	if len(log.Topics) != count {
		return newError("topic not match, expect %d, got %d, tx: %s", count, len(log.Topics), log.TxHash)
	}
	if log.Topics[0] != topic {
		return newError("unexpected event %s, tx: %s", log.Topics[0], log.TxHash)
	}
	return nil
}

func unpackIntegers(args abi.Arguments, log *types.Log) ([]*big.Int, error) {
	values, err := args.Unpack(log.Data)
	if err != nil {
		return nil, newError("failed unpack event data, tx: %s, %s", log.TxHash, err)
	}
	out := make([]*big.Int, len(values))
	for i, v := range values {
		n, ok := v.(*big.Int)
		if !ok {
			return nil, newError("event field %s is not an integer, tx: %s", args[i].Name, log.TxHash)
		}
		out[i] = n
	}
	return out, nil
}

func readTick(v *big.Int) (int, error) {
	if !v.IsInt64() || v.Int64() < int64(MIN_TICK) || v.Int64() > int64(MAX_TICK) {
		return 0, newMathError("tick is outside the range")
	}
	return int(v.Int64()), nil
}

// ParseUniv3InitializeEvent decodes a pool Initialize log and checks that the emitted tick
// is the one the engine derives from the emitted sqrt price.
func ParseUniv3InitializeEvent(log *types.Log) (*UniV3InitializeEvent, error) {
	if err := checkTopics(log, TOPIC_INITIALIZE, 1); err != nil {
		return nil, err
	}
	fields, err := unpackIntegers(initializeEventData, log)
	if err != nil {
		return nil, err
	}
	sqrtPriceX96, err := ToUint160(fields[0])
	if err != nil {
		return nil, err
	}
	tick, err := readTick(fields[1])
	if err != nil {
		return nil, err
	}
	expected, err := GetTickAtSqrtPrice(sqrtPriceX96)
	if err != nil {
		return nil, err
	}
	if tick != expected {
		return nil, newError("initialize tick %d does not match sqrt price tick %d, tx: %s", tick, expected, log.TxHash)
	}
	return &UniV3InitializeEvent{
		RawEvent:     log,
		SqrtPriceX96: sqrtPriceX96,
		Tick:         tick,
	}, nil
}

// ParseUniv3SwapEvent decodes a pool Swap log. The tick is accepted when it is the tick of
// the emitted sqrt price, or one below it when a zeroForOne swap stopped exactly on an
// initialized tick.
func ParseUniv3SwapEvent(log *types.Log) (*UniV3SwapEvent, error) {
	if err := checkTopics(log, TOPIC_SWAP, 3); err != nil {
		return nil, err
	}
	fields, err := unpackIntegers(swapEventData, log)
	if err != nil {
		return nil, err
	}
	amount0, err := ToInt256(fields[0])
	if err != nil {
		return nil, err
	}
	amount1, err := ToInt256(fields[1])
	if err != nil {
		return nil, err
	}
	sqrtPriceX96, err := ToUint160(fields[2])
	if err != nil {
		return nil, err
	}
	liquidity, err := ToUint128(fields[3])
	if err != nil {
		return nil, err
	}
	tick, err := readTick(fields[4])
	if err != nil {
		return nil, err
	}
	if amount0.Sign() == 0 && amount1.Sign() == 0 && liquidity.Sign() == 0 {
		return nil, newError("swap amount is 0: %s", log.TxHash)
	}
	priceTick, err := GetTickAtSqrtPrice(sqrtPriceX96)
	if err != nil {
		return nil, err
	}
	if tick != priceTick && tick != priceTick-1 {
		return nil, newError("swap tick %d inconsistent with sqrt price tick %d, tx: %s", tick, priceTick, log.TxHash)
	}
	return &UniV3SwapEvent{
		RawEvent:     log,
		Sender:       hash2Addr(log.Topics[1]),
		Recipient:    hash2Addr(log.Topics[2]),
		Amount0:      amount0,
		Amount1:      amount1,
		SqrtPriceX96: sqrtPriceX96,
		Liquidity:    liquidity,
		Tick:         tick,
	}, nil
}

func hash2Addr(hs common.Hash) string {
	return strings.ToLower(common.BytesToAddress(hs[12:]).Hex())
}
