package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/maitriparekhcs2848/GearGuard/pkg/config"
	"github.com/maitriparekhcs2848/GearGuard/pkg/database/postgresql"
	"github.com/maitriparekhcs2848/GearGuard/seeders"
)

func main() {
	runMigrate := flag.Bool("migrate", false, "apply schema migrations from ./migrations")
	runDemo := flag.Bool("demo", false, "wipe and refill teams, equipments and requests with demo data")
	runAdmin := flag.Bool("admin", false, "create the initial admin user (ADMIN_EMAIL / ADMIN_PASSWORD)")
	runAll := flag.Bool("all", false, "equivalent to -migrate -demo -admin")

	flag.Parse()

	if !*runMigrate && !*runDemo && !*runAdmin && !*runAll {
		log.Println("nothing selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()

	if *runAll || *runMigrate {
		migrate(cfg.Postgres.DSN)
	}

	if !*runAll && !*runDemo && !*runAdmin {
		return
	}

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runDemo {
		seeders.SeedDemoData(dbPool)
	}

	if *runAll || *runAdmin {
		email := envOr("ADMIN_EMAIL", "admin@example.com")
		password := envOr("ADMIN_PASSWORD", "changeme")
		seeders.SeedAdminUser(dbPool, email, "Administrator", password)
	}

	log.Println("done")
}

func migrate(dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose dialect: %v", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("applying migrations: %v", err)
	}
	log.Println("migrations applied")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
