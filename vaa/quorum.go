package vaa

// CalculateQuorum returns the minimum number of signatures a VAA needs from a
// guardian set of numGuardians members: more than two thirds.
//
// This must match the on-chain contracts (solana/bridge/src/processor.rs and
// ethereum/contracts/Wormhole.sol). A negative size is a programming error.
func CalculateQuorum(numGuardians int) int {
	if numGuardians < 0 {
		panic("Invalid numGuardians is less than zero")
	}
	return ((numGuardians * 2) / 3) + 1
}
