package main

import (
	"errors"
	"io/fs"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/taskboard/taskboard/cmd"
)

const (
	envNamespace = "TASKBOARD"
	envFileVar   = "TASKBOARD_ENV_FILE"
	defaultEnv   = ".env"
)

type options struct {
	Serve   cmd.ServeCommand   `command:"serve" description:"Serve the taskboard API"`
	Migrate cmd.MigrateCommand `command:"migrate" description:"Manage the database schema"`
	Seed    cmd.SeedCommand    `command:"seed" description:"Create users, projects and tasks from a YAML file"`
}

func main() {
	if err := loadEnv(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	parser := flags.NewParser(&options{}, flags.Default)
	parser.NamespaceDelimiter = "-"
	parser.EnvNamespace = envNamespace

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

// loadEnv fills unset variables from the dotenv file. A missing file is
// not an error.
func loadEnv() error {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = defaultEnv
	}

	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
