package main

import (
	"flag"
	"log"

	"github.com/sitepress/sitepress-backend/cmd"
)

// Set at build time with -ldflags "-X main.apiVersion=... -X main.segmentWriteKey=..."
var (
	apiVersion      = "dev"
	segmentWriteKey = ""
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	flag.Parse()

	log.Printf("starting sitepress-backend version %s", apiVersion)

	compiledConfig := cmd.CompiledConfig{
		Version:         apiVersion,
		SegmentWriteKey: segmentWriteKey,
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}

	if *shouldRunServer {
		if err := cmd.RunServer(compiledConfig); err != nil {
			log.Fatal(err)
		}
	}

	if !*shouldRunMigrations && !*shouldRunServer {
		flag.Usage()
	}
}
