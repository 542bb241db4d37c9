package alrajhi

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
)

// Trandata payloads are AES-CBC encrypted with PKCS7 padding and hex
// encoded, using a static key and IV agreed with the gateway.

func encrypt(plain, key, iv []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}

	if len(iv) != block.BlockSize() {
		return "", fmt.Errorf("iv length %d, want %d", len(iv), block.BlockSize())
	}

	padded := pkcs7Pad(plain, block.BlockSize())

	enc := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(enc, padded)

	return hex.EncodeToString(enc), nil
}

func decrypt(encHex string, key, iv []byte) (string, error) {
	enc, err := hex.DecodeString(encHex)
	if err != nil {
		return "", fmt.Errorf("decode hex: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}

	if len(iv) != block.BlockSize() {
		return "", fmt.Errorf("iv length %d, want %d", len(iv), block.BlockSize())
	}

	if len(enc) == 0 || len(enc)%block.BlockSize() != 0 {
		return "", fmt.Errorf("ciphertext length %d is not a multiple of block size", len(enc))
	}

	plain := make([]byte, len(enc))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, enc)

	plain, err = pkcs7Unpad(plain, block.BlockSize())
	if err != nil {
		return "", err
	}

	return string(plain), nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize

	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}

	return padded
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}

	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, fmt.Errorf("invalid padding")
	}

	return b[:len(b)-n], nil
}
