package vaa

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SECURITY: the digests are computed over the body encoding produced by
// Body.Write. Changing that encoding changes every message hash, which
// integrators rely on for replay protection.

func (b *Body) encoded() []byte {
	buf, err := b.Marshal()
	if err != nil {
		// Body.Write only fails if the underlying writer does.
		panic(err)
	}
	return buf
}

// Digest is keccak256 of the body encoding. It identifies the message.
func (b *Body) Digest() common.Hash {
	return crypto.Keccak256Hash(b.encoded())
}

// SigningDigest is keccak256 of Digest. Guardians sign this value.
func (b *Body) SigningDigest() common.Hash {
	return doubleKeccak(b.encoded())
}

func doubleKeccak(bz []byte) common.Hash {
	return crypto.Keccak256Hash(crypto.Keccak256Hash(bz).Bytes())
}

// SigningDigestOf computes the signing digest of an encoded body.
func SigningDigestOf(body []byte) common.Hash {
	return doubleKeccak(body)
}
