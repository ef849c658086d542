package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the environment. The -port flag, when given,
// overrides PORT so several binaries can share one .env locally.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	port := flag.String("port", "", "server port, overrides the PORT environment variable")
	flag.Parse()

	if *port == "" {
		return nil
	}
	if err := os.Setenv("PORT", *port); err != nil {
		return fmt.Errorf("override PORT: %w", err)
	}
	return nil
}
