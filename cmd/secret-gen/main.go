package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
)

func validateHexLen(n int) error {
	if n <= 0 || n%2 != 0 {
		return fmt.Errorf("invalid hex-len: %d (must be positive and even)", n)
	}
	return nil
}

func generateRandomHex(n int) (string, error) {
	raw := make([]byte, n/2)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

func main() {
	hexLen := flag.Int("hex-len", 64, "random hex length (must be even)")
	flag.Parse()

	if err := validateHexLen(*hexLen); err != nil {
		log.Fatal(err)
	}

	jwtSecret, err := generateRandomHex(*hexLen)
	if err != nil {
		log.Fatalf("failed to generate jwt secret: %v", err)
	}

	fmt.Println("Generated server secrets")
	fmt.Printf("JWT_SECRET=%s\n", jwtSecret)
}
