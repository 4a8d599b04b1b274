// Command import bulk-loads a character catalog from a JSON file into the
// database. Rows are upserted by character name, so re-running the tool
// with an updated file refreshes the catalog in place.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/teyvatdex/teyvatdex/internal/flagx"
	"github.com/teyvatdex/teyvatdex/internal/server/config"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
	"github.com/teyvatdex/teyvatdex/internal/server/repositories/repomanager"
	"github.com/teyvatdex/teyvatdex/internal/server/services"
)

func main() {

	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("f", "characters.json", "path to the catalog JSON file")
	_ = fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-f"}))

	if err := run(context.Background(), *file); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, file string) error {

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var chars []*models.Character
	if err := json.Unmarshal(data, &chars); err != nil {
		return err
	}

	cfg := config.LoadConfig()

	db, err := repomanager.Open(ctx, cfg.DatabaseDSN, cfg.MaxOpenConns)
	if err != nil {
		return err
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return err
	}

	svc := services.NewCharacterService(db, rm, cfg)
	n, err := svc.Import(ctx, chars)
	if err != nil {
		return err
	}

	log.Printf("imported %d characters from %s", n, file)
	return nil
}
