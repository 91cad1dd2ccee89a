package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"rsakeygen"
)

func main() {
	message := flag.String("m", "hello", "Plaintext message to round-trip through a freshly generated key")
	keyBytes := flag.Int("keybytes", rsakeygen.DefaultParams().KeyBytes, "Candidate width in bytes (128 => ~1024-bit primes)")
	timeout := flag.Duration("timeout", 2*time.Minute, "Abort key generation after this long")
	flag.Parse()

	params := rsakeygen.DefaultParams()
	params.KeyBytes = *keyBytes

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cypherTest(ctx, params, *message)
}

// cypherTest generates a key, encrypts a message with it, and decrypts the
// result back, demonstrating the round-trip property end to end.
func cypherTest(ctx context.Context, params rsakeygen.Params, message string) {
	fmt.Println("Original message:", message)

	key, err := rsakeygen.GenerateKeyWithParams(ctx, params)
	if err != nil {
		log.Fatalf("key generation failed: %v", err)
	}
	fmt.Printf("Keys generated (modulus is %d bits)\n", key.N.BitLen())

	ciphertext, err := key.EncryptBytes([]byte(message))
	if err != nil {
		log.Fatalf("encrypt failed: %v", err)
	}
	fmt.Println("Ciphertext:", ciphertext)

	plaintext, err := key.DecryptBytes(ciphertext)
	if err != nil {
		log.Fatalf("decrypt failed: %v", err)
	}
	fmt.Println("Decrypted result:", string(plaintext))

	if string(plaintext) == message {
		fmt.Println("Decrypted result matches the original message.")
	} else {
		fmt.Println("Decrypted result does NOT match the original message.")
	}
}
