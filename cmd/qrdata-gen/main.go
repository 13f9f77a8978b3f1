package main

import (
	"flag"
	"fmt"
	"log"

	"qrmenu.backend/pkg/utils"
)

func generateQRData(n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		qr, err := utils.NewQRData()
		if err != nil {
			return nil, err
		}
		out = append(out, qr)
	}
	return out, nil
}

func main() {
	count := flag.Int("n", 1, "number of QR identifiers to generate")
	flag.Parse()

	ids, err := generateQRData(*count)
	if err != nil {
		log.Fatal(err)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
}
