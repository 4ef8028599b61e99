package vaa

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ChainID is a wormhole chain identifier.
type ChainID uint16

const (
	ChainIDUnset           ChainID = 0
	ChainIDSolana          ChainID = 1
	ChainIDEthereum        ChainID = 2
	ChainIDTerra           ChainID = 3
	ChainIDBSC             ChainID = 4
	ChainIDPolygon         ChainID = 5
	ChainIDAvalanche       ChainID = 6
	ChainIDOasis           ChainID = 7
	ChainIDAlgorand        ChainID = 8
	ChainIDAurora          ChainID = 9
	ChainIDFantom          ChainID = 10
	ChainIDKarura          ChainID = 11
	ChainIDAcala           ChainID = 12
	ChainIDKlaytn          ChainID = 13
	ChainIDCelo            ChainID = 14
	ChainIDNear            ChainID = 15
	ChainIDMoonbeam        ChainID = 16
	ChainIDTerra2          ChainID = 18
	ChainIDInjective       ChainID = 19
	ChainIDOsmosis         ChainID = 20
	ChainIDSui             ChainID = 21
	ChainIDAptos           ChainID = 22
	ChainIDArbitrum        ChainID = 23
	ChainIDOptimism        ChainID = 24
	ChainIDGnosis          ChainID = 25
	ChainIDPythNet         ChainID = 26
	ChainIDXpla            ChainID = 28
	ChainIDBtc             ChainID = 29
	ChainIDBase            ChainID = 30
	ChainIDFileCoin        ChainID = 31
	ChainIDSei             ChainID = 32
	ChainIDRootstock       ChainID = 33
	ChainIDScroll          ChainID = 34
	ChainIDMantle          ChainID = 35
	ChainIDBlast           ChainID = 36
	ChainIDXLayer          ChainID = 37
	ChainIDLinea           ChainID = 38
	ChainIDBerachain       ChainID = 39
	ChainIDSeiEVM          ChainID = 40
	ChainIDEclipse         ChainID = 41
	ChainIDBOB             ChainID = 42
	ChainIDSnaxchain       ChainID = 43
	ChainIDUnichain        ChainID = 44
	ChainIDWorldchain      ChainID = 45
	ChainIDInk             ChainID = 46
	ChainIDHyperEVM        ChainID = 47
	ChainIDMonad           ChainID = 48
	ChainIDMovement        ChainID = 49
	ChainIDMezo            ChainID = 50
	ChainIDFogo            ChainID = 51
	ChainIDAztec           ChainID = 52
	ChainIDWormchain       ChainID = 3104
	ChainIDCosmoshub       ChainID = 4000
	ChainIDEvmos           ChainID = 4001
	ChainIDKujira          ChainID = 4002
	ChainIDNeutron         ChainID = 4003
	ChainIDCelestia        ChainID = 4004
	ChainIDStargaze        ChainID = 4005
	ChainIDSeda            ChainID = 4006
	ChainIDDymension       ChainID = 4007
	ChainIDProvenance      ChainID = 4008
	ChainIDNoble           ChainID = 4009
	ChainIDSepolia         ChainID = 10002
	ChainIDArbitrumSepolia ChainID = 10003
	ChainIDBaseSepolia     ChainID = 10004
	ChainIDOptimismSepolia ChainID = 10005
	ChainIDHolesky         ChainID = 10006
	ChainIDPolygonSepolia  ChainID = 10007
)

type chainInfo struct {
	id   ChainID
	name string
}

var knownChains = []chainInfo{
	{ChainIDSolana, "solana"},
	{ChainIDEthereum, "ethereum"},
	{ChainIDTerra, "terra"},
	{ChainIDBSC, "bsc"},
	{ChainIDPolygon, "polygon"},
	{ChainIDAvalanche, "avalanche"},
	{ChainIDOasis, "oasis"},
	{ChainIDAlgorand, "algorand"},
	{ChainIDAurora, "aurora"},
	{ChainIDFantom, "fantom"},
	{ChainIDKarura, "karura"},
	{ChainIDAcala, "acala"},
	{ChainIDKlaytn, "klaytn"},
	{ChainIDCelo, "celo"},
	{ChainIDNear, "near"},
	{ChainIDMoonbeam, "moonbeam"},
	{ChainIDTerra2, "terra2"},
	{ChainIDInjective, "injective"},
	{ChainIDOsmosis, "osmosis"},
	{ChainIDSui, "sui"},
	{ChainIDAptos, "aptos"},
	{ChainIDArbitrum, "arbitrum"},
	{ChainIDOptimism, "optimism"},
	{ChainIDGnosis, "gnosis"},
	{ChainIDPythNet, "pythnet"},
	{ChainIDXpla, "xpla"},
	{ChainIDBtc, "btc"},
	{ChainIDBase, "base"},
	{ChainIDFileCoin, "filecoin"},
	{ChainIDSei, "sei"},
	{ChainIDRootstock, "rootstock"},
	{ChainIDScroll, "scroll"},
	{ChainIDMantle, "mantle"},
	{ChainIDBlast, "blast"},
	{ChainIDXLayer, "xlayer"},
	{ChainIDLinea, "linea"},
	{ChainIDBerachain, "berachain"},
	{ChainIDSeiEVM, "seievm"},
	{ChainIDEclipse, "eclipse"},
	{ChainIDBOB, "bob"},
	{ChainIDSnaxchain, "snaxchain"},
	{ChainIDUnichain, "unichain"},
	{ChainIDWorldchain, "worldchain"},
	{ChainIDInk, "ink"},
	{ChainIDHyperEVM, "hyperevm"},
	{ChainIDMonad, "monad"},
	{ChainIDMovement, "movement"},
	{ChainIDMezo, "mezo"},
	{ChainIDFogo, "fogo"},
	{ChainIDAztec, "aztec"},
	{ChainIDWormchain, "wormchain"},
	{ChainIDCosmoshub, "cosmoshub"},
	{ChainIDEvmos, "evmos"},
	{ChainIDKujira, "kujira"},
	{ChainIDNeutron, "neutron"},
	{ChainIDCelestia, "celestia"},
	{ChainIDStargaze, "stargaze"},
	{ChainIDSeda, "seda"},
	{ChainIDDymension, "dymension"},
	{ChainIDProvenance, "provenance"},
	{ChainIDNoble, "noble"},
	{ChainIDSepolia, "sepolia"},
	{ChainIDArbitrumSepolia, "arbitrum_sepolia"},
	{ChainIDBaseSepolia, "base_sepolia"},
	{ChainIDOptimismSepolia, "optimism_sepolia"},
	{ChainIDHolesky, "holesky"},
	{ChainIDPolygonSepolia, "polygon_sepolia"},
}

var (
	chainNames   map[ChainID]string
	chainsByName map[string]ChainID
	allChainIDs  []ChainID
)

func init() {
	chainNames = make(map[ChainID]string, len(knownChains))
	chainsByName = make(map[string]ChainID, len(knownChains))
	allChainIDs = make([]ChainID, 0, len(knownChains))
	for _, c := range knownChains {
		if _, dup := chainNames[c.id]; dup {
			panic(fmt.Sprintf("duplicate chain id %d", c.id))
		}
		if _, dup := chainsByName[c.name]; dup {
			panic(fmt.Sprintf("duplicate chain name %q", c.name))
		}
		chainNames[c.id] = c.name
		chainsByName[c.name] = c.id
		allChainIDs = append(allChainIDs, c.id)
	}
	sort.Slice(allChainIDs, func(i, j int) bool { return allChainIDs[i] < allChainIDs[j] })
}

func (c ChainID) String() string {
	if c == ChainIDUnset {
		return "unset"
	}
	if name, ok := chainNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown chain ID: %d", uint16(c))
}

// IsKnown reports whether c is a registered chain.
func (c ChainID) IsKnown() bool {
	_, ok := chainNames[c]
	return ok
}

// ChainIDFromString converts a chain name (e.g. "solana") to its ChainID.
// Matching is case-insensitive.
func ChainIDFromString(s string) (ChainID, error) {
	if id, ok := chainsByName[strings.ToLower(s)]; ok {
		return id, nil
	}
	return ChainIDUnset, fmt.Errorf("unknown chain ID: %s", s)
}

// number is the set of integer types that can be converted to a ChainID.
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ChainIDFromNumber converts an integer into a ChainID, failing if it does
// not fit in 16 bits. It does not check that the chain is registered.
func ChainIDFromNumber[N number](n N) (ChainID, error) {
	if n < 0 {
		return ChainIDUnset, fmt.Errorf("chainID cannot be negative but got %d", n)
	}
	if uint64(n) > math.MaxUint16 {
		return ChainIDUnset, fmt.Errorf("chainID must be less than or equal to %d but got %d", math.MaxUint16, n)
	}
	return ChainID(n), nil
}

// KnownChainIDFromNumber is ChainIDFromNumber restricted to registered chains.
func KnownChainIDFromNumber[N number](n N) (ChainID, error) {
	id, err := ChainIDFromNumber(n)
	if err != nil {
		return ChainIDUnset, err
	}
	if !id.IsKnown() {
		return ChainIDUnset, fmt.Errorf("no known ChainID for input %d", n)
	}
	return id, nil
}

// StringToKnownChainID accepts either a chain name or a decimal chain id.
// Unregistered ids, including 0, are rejected.
func StringToKnownChainID(s string) (ChainID, error) {
	if id, err := ChainIDFromString(s); err == nil {
		return id, nil
	}
	u16, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return ChainIDUnset, err
	}
	return KnownChainIDFromNumber(u16)
}

// GetAllNetworkIDs returns every registered chain in ascending id order.
func GetAllNetworkIDs() []ChainID {
	out := make([]ChainID, len(allChainIDs))
	copy(out, allChainIDs)
	return out
}
