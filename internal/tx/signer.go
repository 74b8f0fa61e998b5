// Package tx builds, signs, and submits Waves transactions for the lending
// and swap operations. Every mutating call runs its pre-checks before any
// bytes are signed; a transaction that cannot succeed is never broadcast.
package tx

import (
	"strings"

	"github.com/wavesplatform/gowaves/pkg/crypto"
	"github.com/wavesplatform/gowaves/pkg/proto"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
)

// Signer derives the public key and address for a base58-encoded private key
// and signs transactions under one chain scheme.
type Signer struct {
	secret crypto.SecretKey
	public crypto.PublicKey
	addr   proto.WavesAddress
	scheme proto.Scheme
}

// SchemeFromChain maps a chain name to its network byte. Unknown names fall
// back to mainnet.
func SchemeFromChain(chain string) proto.Scheme {
	if strings.EqualFold(strings.TrimSpace(chain), "testnet") {
		return proto.TestNetScheme
	}
	return proto.MainNetScheme
}

// NewSigner builds a signer from a base58 private key. An empty key reports
// the no-signing-key condition so read-only commands keep working without
// credentials.
func NewSigner(privateKeyBase58 string, scheme proto.Scheme) (*Signer, error) {
	privateKeyBase58 = strings.TrimSpace(privateKeyBase58)
	if privateKeyBase58 == "" {
		return nil, txerr.New(txerr.CodeAuth, "no signing key configured")
	}
	secret, err := crypto.NewSecretKeyFromBase58(privateKeyBase58)
	if err != nil {
		return nil, txerr.Wrap(txerr.CodeAuth, "invalid signing key", err)
	}
	public := crypto.GeneratePublicKey(secret)
	addr, err := proto.NewAddressFromPublicKey(scheme, public)
	if err != nil {
		return nil, txerr.Wrap(txerr.CodeAuth, "derive address", err)
	}
	return &Signer{secret: secret, public: public, addr: addr, scheme: scheme}, nil
}

func (s *Signer) Address() string { return s.addr.String() }

func (s *Signer) PublicKey() crypto.PublicKey { return s.public }

func (s *Signer) Scheme() proto.Scheme { return s.scheme }
