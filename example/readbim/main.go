package main

import (
	"flag"
	"log"

	"github.com/carbocation/plink"
)

func main() {
	path := flag.String("path", "", "Path to a .bim file")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No path provided")
	}

	b, err := plink.OpenBIM(*path)
	if err != nil {
		log.Fatalln(err)
	}
	defer b.Close()

	n := 0
	for v := b.Read(); v != nil; v = b.Read() {
		n++
		_ = v
	}
	if b.Err() != nil {
		log.Fatalln(b.Err())
	}

	log.Println(n, "variants")
}
