package vaa

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrNoGuardians            = errors.New("no addresses were provided")
	ErrNotSigned              = errors.New("VAA was not signed")
	ErrNoQuorum               = errors.New("VAA did not have a quorum")
	ErrGuardianSetMismatch    = errors.New("guardian set index mismatch")
	ErrSignatureIndexRange    = errors.New("signature index out of range")
	ErrSignatureIndexOrder    = errors.New("signature indices must be strictly increasing")
	ErrSignatureSignerInvalid = errors.New("signature does not match guardian key")
	ErrSignatureSignerRepeat  = errors.New("guardian signed more than once")
)

// SignatureRecoverer recovers the signing address from a signature over digest.
type SignatureRecoverer interface {
	Recover(digest common.Hash, sig SignatureData) (common.Address, error)
}

// EcdsaRecoverer recovers secp256k1 signers.
type EcdsaRecoverer struct{}

func (EcdsaRecoverer) Recover(digest common.Hash, sig SignatureData) (common.Address, error) {
	pubKey, err := crypto.Ecrecover(digest.Bytes(), sig[:])
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(crypto.Keccak256(pubKey[1:])[12:]), nil
}

// GuardianSet is the ordered list of guardian keys active under Index.
type GuardianSet struct {
	Keys  []common.Address
	Index uint32
}

func NewGuardianSet(keys []common.Address, index uint32) *GuardianSet {
	return &GuardianSet{Keys: keys, Index: index}
}

func (gs *GuardianSet) Quorum() int {
	return CalculateQuorum(len(gs.Keys))
}

// KeyIndex returns the position of addr in the set.
func (gs *GuardianSet) KeyIndex(addr common.Address) (int, bool) {
	for n, k := range gs.Keys {
		if k == addr {
			return n, true
		}
	}
	return -1, false
}

// VerifySignatures checks every signature against keys. Indices must be
// strictly increasing and each signer may appear only once, even when its key
// sits at more than one position in keys.
func VerifySignatures(digest common.Hash, signatures []Signature, keys []common.Address, recoverer SignatureRecoverer) error {
	if len(keys) < len(signatures) {
		return fmt.Errorf("%w: %d signatures for %d guardians", ErrSignatureIndexRange, len(signatures), len(keys))
	}
	last := -1
	seen := make(map[common.Address]struct{}, len(signatures))
	for _, sig := range signatures {
		idx := int(sig.Index)
		if idx >= len(keys) {
			return fmt.Errorf("%w: %d", ErrSignatureIndexRange, idx)
		}
		if idx <= last {
			return fmt.Errorf("%w: %d after %d", ErrSignatureIndexOrder, idx, last)
		}
		last = idx

		addr, err := recoverer.Recover(digest, sig.Signature)
		if err != nil {
			return fmt.Errorf("%w: index %d: %w", ErrSignatureSignerInvalid, idx, err)
		}
		if addr != keys[idx] {
			return fmt.Errorf("%w: index %d recovered %s", ErrSignatureSignerInvalid, idx, addr)
		}
		if _, dup := seen[addr]; dup {
			return fmt.Errorf("%w: %s at index %d", ErrSignatureSignerRepeat, addr, idx)
		}
		seen[addr] = struct{}{}
	}
	return nil
}

// VerifySignatures reports whether the signatures verify against addresses.
func (v *VAA) VerifySignatures(addresses []common.Address) bool {
	return VerifySignatures(v.SigningDigest(), v.Signatures, addresses, EcdsaRecoverer{}) == nil
}

// Verify checks the VAA against the complete guardian set it claims to be
// signed by. Passing a subset of the set's keys gives wrong results.
//
// A nil recoverer uses EcdsaRecoverer.
func (v *VAA) Verify(gs *GuardianSet, recoverer SignatureRecoverer) error {
	if gs == nil || len(gs.Keys) == 0 {
		return ErrNoGuardians
	}
	if v.GuardianSetIndex != gs.Index {
		return fmt.Errorf("%w: VAA has %d, set is %d", ErrGuardianSetMismatch, v.GuardianSetIndex, gs.Index)
	}
	if len(v.Signatures) == 0 {
		return ErrNotSigned
	}
	if len(v.Signatures) < gs.Quorum() {
		return fmt.Errorf("%w: %d of %d", ErrNoQuorum, len(v.Signatures), gs.Quorum())
	}
	if recoverer == nil {
		recoverer = EcdsaRecoverer{}
	}
	return VerifySignatures(v.SigningDigest(), v.Signatures, gs.Keys, recoverer)
}

// AddSignature signs the VAA with key and appends the signature under index.
func (v *VAA) AddSignature(key *ecdsa.PrivateKey, index uint8) {
	sig, err := crypto.Sign(v.SigningDigest().Bytes(), key)
	if err != nil {
		panic(err)
	}
	var data SignatureData
	copy(data[:], sig)
	v.Signatures = append(v.Signatures, Signature{Index: index, Signature: data})
}
