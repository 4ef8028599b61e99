package deploys

import (
	"fmt"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
)

// evmChainIDs maps Wormhole chain IDs to the chain ID used by the EVM itself
// (EIP-155), per environment.
var evmChainIDs = map[Environment]map[vaa.ChainID]uint64{
	EnvMainNet: {
		vaa.ChainIDEthereum:  1,
		vaa.ChainIDBSC:       56,
		vaa.ChainIDPolygon:   137,
		vaa.ChainIDAvalanche: 43114,
		vaa.ChainIDOasis:     42262,
		vaa.ChainIDAurora:    1313161554,
		vaa.ChainIDFantom:    250,
		vaa.ChainIDKarura:    686,
		vaa.ChainIDAcala:     787,
		vaa.ChainIDKlaytn:    8217,
		vaa.ChainIDCelo:      42220,
		vaa.ChainIDMoonbeam:  1284,
		vaa.ChainIDArbitrum:  42161,
		vaa.ChainIDOptimism:  10,
		vaa.ChainIDGnosis:    100,
		vaa.ChainIDBase:      8453,
		vaa.ChainIDRootstock: 30,
		vaa.ChainIDScroll:    534352,
		vaa.ChainIDMantle:    5000,
		vaa.ChainIDBlast:     81457,
		vaa.ChainIDXLayer:    196,
		vaa.ChainIDLinea:     59144,
		vaa.ChainIDBerachain: 80094,
		vaa.ChainIDSeiEVM:    1329,
		vaa.ChainIDSnaxchain: 2192,
	},
	EnvTestNet: {
		vaa.ChainIDEthereum:        17000,
		vaa.ChainIDBSC:             97,
		vaa.ChainIDPolygon:         80001,
		vaa.ChainIDAvalanche:       43113,
		vaa.ChainIDOasis:           42261,
		vaa.ChainIDAurora:          1313161555,
		vaa.ChainIDFantom:          4002,
		vaa.ChainIDKarura:          596,
		vaa.ChainIDAcala:           595,
		vaa.ChainIDKlaytn:          1001,
		vaa.ChainIDCelo:            44787,
		vaa.ChainIDMoonbeam:        1287,
		vaa.ChainIDArbitrum:        421613,
		vaa.ChainIDOptimism:        420,
		vaa.ChainIDGnosis:          10200,
		vaa.ChainIDBase:            84531,
		vaa.ChainIDRootstock:       31,
		vaa.ChainIDScroll:          534351,
		vaa.ChainIDMantle:          5003,
		vaa.ChainIDBlast:           168587773,
		vaa.ChainIDXLayer:          195,
		vaa.ChainIDLinea:           59141,
		vaa.ChainIDBerachain:       80084,
		vaa.ChainIDSeiEVM:          1328,
		vaa.ChainIDSnaxchain:       13001,
		vaa.ChainIDSepolia:         11155111,
		vaa.ChainIDArbitrumSepolia: 421614,
		vaa.ChainIDBaseSepolia:     84532,
		vaa.ChainIDOptimismSepolia: 11155420,
		vaa.ChainIDHolesky:         17000,
		vaa.ChainIDPolygonSepolia:  80002,
	},
	EnvDevNet: {
		vaa.ChainIDEthereum: 1337,
		vaa.ChainIDBSC:      1397,
	},
}

// IsEvmChainID reports whether chain is an EVM chain in env.
func IsEvmChainID(env Environment, chain vaa.ChainID) (bool, error) {
	m, ok := evmChainIDs[env]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrInvalidEnv, uint8(env))
	}
	_, exists := m[chain]
	return exists, nil
}

// EvmChainID returns the EVM chain ID of chain in env. The result is what a
// RecoverChainID decree carries as its EVM chain ID.
func EvmChainID(env Environment, chain vaa.ChainID) (uint64, error) {
	m, ok := evmChainIDs[env]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidEnv, uint8(env))
	}
	id, exists := m[chain]
	if !exists {
		return 0, fmt.Errorf("%w: no EVM chain ID for %s in %s", ErrNotFound, chain, env)
	}
	return id, nil
}
