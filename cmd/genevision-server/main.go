// cmd/genevision-server/main.go
package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"

	"genevision/internal/server"
	"genevision/internal/version"
)

func main() {
	// Gather environment variables
	var cfg server.Config
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("genevision-server %s\n"+
		"\tDebug : %t\n"+
		"\tMax Sequence Length : %d\n"+
		"Running on Port : %s\n",
		version.Version, cfg.Debug, cfg.MaxSequenceLength, cfg.Port)

	e := server.New(&cfg)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
