package hive

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/pem"
	"fmt"
	"os"
)

// GenerateKeyPair generates a new Ed25519 key pair for signing published
// readout packets.
func GenerateKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("hive: generate key pair: %w", err)
	}
	return pub, priv, nil
}

// SignPacket signs the SHA-256 hash of a framed readout packet, adapted
// from the teacher's src/core/crypto/signer.go Sign routine.
func SignPacket(priv ed25519.PrivateKey, packet []byte) []byte {
	hash := sha256.Sum256(packet)
	return ed25519.Sign(priv, hash[:])
}

// VerifyPacket checks an Ed25519 signature over a framed readout packet
// before it is handed to Registry.Accept.
func VerifyPacket(pub ed25519.PublicKey, packet, signature []byte) bool {
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	hash := sha256.Sum256(packet)
	return ed25519.Verify(pub, hash[:], signature)
}

// SavePrivateKey PEM-encodes key and writes it to path via the
// write-temp-then-rename pattern.
func SavePrivateKey(key ed25519.PrivateKey, path string) error {
	block := &pem.Block{Type: "PRIVATE KEY", Bytes: key}
	data := pem.EncodeToMemory(block)

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("hive: write temp key: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("hive: rename key: %w", err)
	}
	return nil
}

// LoadPrivateKey reads and PEM-decodes an Ed25519 private key from path.
func LoadPrivateKey(path string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hive: read key file: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("hive: failed to decode PEM block")
	}
	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("hive: invalid PEM block type: %s", block.Type)
	}
	if len(block.Bytes) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("hive: invalid private key size: %d bytes", len(block.Bytes))
	}
	return ed25519.PrivateKey(block.Bytes), nil
}
