package main

import (
	"fmt"
	"log"
	"os"

	"vacuum/internal/scenario"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vacuum: ")

	if len(os.Args) > 2 {
		log.Fatalf("usage: %s [scenario file]", os.Args[0])
	}

	cfg := scenario.Default()
	if len(os.Args) == 2 {
		var err error
		cfg, err = scenario.Load(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}

	sim, err := scenario.Build(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	report := sim.Run()
	fmt.Println(report)
	fmt.Printf("Robot final position: %s\n", sim.Agent)
}
