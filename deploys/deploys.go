// Package deploys is a registry of the core, token bridge and NFT bridge
// contract deployments for each known chain and network environment.
package deploys

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/payloads/tokenbridge"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
)

var (
	ErrInvalidEnv = errors.New("invalid environment")
	ErrNotFound   = errors.New("not found")
)

// Environment represents the Wormhole network environment
type Environment uint8

const (
	EnvMainNet Environment = iota
	EnvTestNet
	EnvDevNet
)

// String returns the string representation of the Environment.
// The output corresponds to the input format used by EnvironmentFromString.
func (e Environment) String() string {
	switch e {
	case EnvMainNet:
		return "prod"
	case EnvTestNet:
		return "test"
	case EnvDevNet:
		return "dev"
	default:
		return fmt.Sprintf("unknown environment: %d", uint8(e))
	}
}

// EnvironmentFromString parses "prod", "test" or "dev". The network names
// "mainnet", "testnet" and "devnet" are accepted as well.
func EnvironmentFromString(env string) (Environment, error) {
	switch strings.ToLower(env) {
	case "prod", "mainnet":
		return EnvMainNet, nil
	case "test", "testnet":
		return EnvTestNet, nil
	case "dev", "devnet":
		return EnvDevNet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidEnv, env)
	}
}

// VM is the execution environment of a chain. It determines how contract
// addresses are encoded.
type VM uint8

const (
	VMEvm VM = iota
	VMSolana
	VMCosmWasm
)

func (v VM) String() string {
	switch v {
	case VMEvm:
		return "evm"
	case VMSolana:
		return "solana"
	case VMCosmWasm:
		return "cosmwasm"
	default:
		return fmt.Sprintf("unknown vm: %d", uint8(v))
	}
}

// CoreDeployment describes the contracts deployed on one chain in one
// environment. Bridge addresses are nil when no bridge is deployed.
type CoreDeployment struct {
	Chain              vaa.ChainID
	Name               string
	Env                Environment
	VM                 VM
	CoreAddress        []byte
	TokenBridgeAddress []byte
	NFTBridgeAddress   []byte
}

func (d *CoreDeployment) clone() *CoreDeployment {
	c := *d
	c.CoreAddress = bytes.Clone(d.CoreAddress)
	c.TokenBridgeAddress = bytes.Clone(d.TokenBridgeAddress)
	c.NFTBridgeAddress = bytes.Clone(d.NFTBridgeAddress)
	return &c
}

// PaddedAddress left-pads a contract address to the 32 bytes used on the wire.
func PaddedAddress(addr []byte) vaa.Address {
	var a vaa.Address
	copy(a[:], common.LeftPadBytes(addr, 32))
	return a
}

// deployment is a table row with addresses in their native text encoding.
type deployment struct {
	chain       vaa.ChainID
	name        string
	aliases     []string
	env         Environment
	core        string
	tokenBridge string
	nftBridge   string
}

type idKey struct {
	chain vaa.ChainID
	env   Environment
}

type nameKey struct {
	name string
	env  Environment
}

var (
	byID   map[idKey]*CoreDeployment
	byName map[nameKey]*CoreDeployment
	byEnv  map[Environment][]*CoreDeployment
)

func init() {
	byID = make(map[idKey]*CoreDeployment)
	byName = make(map[nameKey]*CoreDeployment)
	byEnv = make(map[Environment][]*CoreDeployment)

	register(VMEvm, evmDeployments, decodeHex)
	register(VMSolana, solanaDeployments, base58.Decode)
	register(VMCosmWasm, cosmWasmDeployments, decodeBech32)

	for env := range byEnv {
		all := byEnv[env]
		sort.Slice(all, func(i, j int) bool { return all[i].Chain < all[j].Chain })
	}
}

func register(vm VM, rows []deployment, decode func(string) ([]byte, error)) {
	for _, row := range rows {
		d := &CoreDeployment{
			Chain:              row.chain,
			Name:               row.name,
			Env:                row.env,
			VM:                 vm,
			CoreAddress:        mustDecode(decode, row.core),
			TokenBridgeAddress: mustDecode(decode, row.tokenBridge),
			NFTBridgeAddress:   mustDecode(decode, row.nftBridge),
		}

		id := idKey{row.chain, row.env}
		if prev, dup := byID[id]; dup {
			panic(fmt.Sprintf("duplicate deployment for %s in %s: %s and %s", row.chain, row.env, prev.Name, row.name))
		}
		byID[id] = d
		byEnv[row.env] = append(byEnv[row.env], d)

		for _, name := range append([]string{row.name}, row.aliases...) {
			key := nameKey{strings.ToLower(name), row.env}
			if prev, dup := byName[key]; dup {
				panic(fmt.Sprintf("duplicate deployment name %q in %s: %s and %s", name, row.env, prev.Name, row.name))
			}
			byName[key] = d
		}
	}
}

func mustDecode(decode func(string) ([]byte, error), s string) []byte {
	if s == "" {
		return nil
	}
	b, err := decode(s)
	if err != nil {
		panic(fmt.Sprintf("failed to decode deployment address %v: %v", s, err))
	}
	return b
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func decodeBech32(s string) ([]byte, error) {
	_, data, err := bech32.Decode(s)
	if err != nil {
		return nil, err
	}
	return bech32.ConvertBits(data, 5, 8, false)
}

// Lookup returns a copy of the deployment of chain in env.
func Lookup(chain vaa.ChainID, env Environment) (*CoreDeployment, error) {
	d, ok := byID[idKey{chain, env}]
	if !ok {
		return nil, fmt.Errorf("%w: no %s deployment for chain %s", ErrNotFound, env, chain)
	}
	return d.clone(), nil
}

// LookupByName returns the deployment called name (or one of its aliases) in
// env. Names are matched case-insensitively.
func LookupByName(name string, env Environment) (*CoreDeployment, error) {
	d, ok := byName[nameKey{strings.ToLower(name), env}]
	if !ok {
		return nil, fmt.Errorf("%w: no %s deployment named %q", ErrNotFound, env, name)
	}
	return d.clone(), nil
}

// All returns copies of every deployment in env, ordered by chain ID.
func All(env Environment) []*CoreDeployment {
	all := byEnv[env]
	out := make([]*CoreDeployment, len(all))
	for i, d := range all {
		out[i] = d.clone()
	}
	return out
}

// TokenBridgeEmitter returns the address token bridge messages are emitted
// from. Only EVM bridges emit from their contract address, so other VMs
// report false.
func (d *CoreDeployment) TokenBridgeEmitter() (vaa.Address, bool) {
	if d.VM != VMEvm || d.TokenBridgeAddress == nil {
		return vaa.Address{}, false
	}
	return PaddedAddress(d.TokenBridgeAddress), true
}

// IsWTT checks if the VAA is a token transfer emitted by the known token
// bridge of its emitter chain in env.
func IsWTT(v *vaa.VAA, env Environment) bool {
	if !tokenbridge.IsTransfer(v.Payload) {
		return false
	}
	d, err := Lookup(v.EmitterChain, env)
	if err != nil {
		return false
	}
	emitter, ok := d.TokenBridgeEmitter()
	return ok && emitter == v.EmitterAddress
}
