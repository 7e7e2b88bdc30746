// devdb runs a disposable MySQL server for local development and prints
// the environment the server expects. Ctrl-C tears it down.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/socialsync/socialdb/internal/testdb"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a disposable MySQL container for local socialdb development.

Usage:

devdb [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to a .env file to load before starting
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	ctx := context.Background()
	container, err := testdb.Start(ctx)
	if err != nil {
		log.Fatalf("Failed to start MySQL container: %v\n", err)
	}

	fmt.Println("MySQL is up. Point the server at it with:")
	fmt.Printf("  DB_TYPE=mysql DB_HOST=%s DB_PORT=%s DB_DATABASE=%s DB_USER=root DB_PASSWORD=%s\n",
		container.Host, container.Port, container.Database(), container.Password())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating container...\n", sig)
	if err := container.Terminate(ctx); err != nil {
		log.Fatalf("Failed to terminate container: %v\n", err)
	}
}
