package service

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"fmt"
)

// KeyPair is a freshly generated identity key pair, base64 encoded.
type KeyPair struct {
	// PublicKey is the SubjectPublicKeyInfo DER encoding.
	PublicKey string `json:"publicKey"`
	// PrivateKey is the PKCS #8 DER encoding. It is never stored.
	PrivateKey string `json:"privateKey"`
}

// GenerateKeyPair creates an ECDSA P-256 key pair for a new identity.
func GenerateKeyPair() (*KeyPair, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("encoding public key: %w", err)
	}
	priv, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("encoding private key: %w", err)
	}

	return &KeyPair{
		PublicKey:  base64.StdEncoding.EncodeToString(pub),
		PrivateKey: base64.StdEncoding.EncodeToString(priv),
	}, nil
}
