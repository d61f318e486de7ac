package types

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key. Clamping happens at use.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Secp256k1Public is a SEC1 compressed secp256k1 public key.
type Secp256k1Public [33]byte

// Slice returns the key as a []byte.
func (p Secp256k1Public) Slice() []byte { return p[:] }

// Secp256k1Private is a big-endian secp256k1 private scalar.
type Secp256k1Private [32]byte

// Slice returns the key as a []byte.
func (k Secp256k1Private) Slice() []byte { return k[:] }

// Signature is a fixed-size ECDSA signature laid out as r||s.
type Signature [64]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// SharedSecret is the raw X25519 agreement output.
type SharedSecret [32]byte

// Slice returns the secret as a []byte.
func (s SharedSecret) Slice() []byte { return s[:] }
