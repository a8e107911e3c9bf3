// Command hashpw mints the argon2id PHC string for ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hashpw 'the-admin-password'
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/5w1tchy/passcheck-api/internal/security/password"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env") // pick up ARGON2_* overrides if present

	if len(os.Args) != 2 || os.Args[1] == "" {
		log.Fatalf("usage: %s <password>", os.Args[0])
	}

	phc, err := password.Hash(os.Args[1])
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}
	fmt.Println(phc)
}
