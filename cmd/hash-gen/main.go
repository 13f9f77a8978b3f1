package main

import (
	"flag"
	"fmt"
	"log"

	"qrmenu.backend/pkg/crypto"
)

// hash-gen prints a bcrypt hash for seeding admin accounts.

func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: hash-gen -password <password>")
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
