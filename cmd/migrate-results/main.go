// migrate-results migrates recorded runs from SQLite to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-results \
//	    -sqlite data/results.db \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user mazebound \
//	    -pg-password mazebound \
//	    -pg-database mazebound
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mazebound/mazebound/internal/results"
)

func main() {
	// Parse command-line flags
	sqlitePath := flag.String("sqlite", "data/results.db", "Path to SQLite results database")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "mazebound", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "mazebound", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "mazebound", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	log.Println("SQLite to PostgreSQL Migration Tool")
	log.Println("====================================")

	// Open SQLite database
	log.Printf("Opening SQLite database: %s", *sqlitePath)
	sqliteDB, err := sql.Open("sqlite", *sqlitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite database: %v", err)
	}
	defer sqliteDB.Close()

	// Verify SQLite connection
	if err := sqliteDB.Ping(); err != nil {
		log.Fatalf("Failed to connect to SQLite database: %v", err)
	}

	// Build PostgreSQL connection string
	pgConn := results.PostgresConfig{
		Host:     *pgHost,
		Port:     *pgPort,
		User:     *pgUser,
		Password: *pgPassword,
		Database: *pgDatabase,
		SSLMode:  *pgSSLMode,
	}

	// Open PostgreSQL database
	log.Printf("Opening PostgreSQL database: %s@%s:%d/%s", *pgUser, *pgHost, *pgPort, *pgDatabase)
	pgDB, err := sql.Open("postgres", pgConn.DSN())
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL database: %v", err)
	}
	defer pgDB.Close()

	// Verify PostgreSQL connection
	if err := pgDB.Ping(); err != nil {
		log.Fatalf("Failed to connect to PostgreSQL database: %v", err)
	}

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	// Ensure the results table exists on the PostgreSQL side
	log.Println("Ensuring PostgreSQL schema is ready...")
	if !*dryRun {
		dialect := results.NewDialect(results.DialectPostgres)
		for _, stmt := range dialect.SchemaStatements() {
			if _, err := pgDB.Exec(stmt); err != nil {
				log.Fatalf("Failed to migrate PostgreSQL schema: %v", err)
			}
		}
	}

	log.Println("Migrating table: results")
	count, err := migrateResults(sqliteDB, pgDB, *dryRun)
	if err != nil {
		log.Fatalf("Failed to migrate results: %v", err)
	}
	log.Printf("  Migrated %d rows", count)

	log.Println("====================================")
	log.Printf("Migration complete! Total rows migrated: %d", count)
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}

func migrateResults(sqlite, pg *sql.DB, dryRun bool) (int64, error) {
	rows, err := sqlite.Query(`
		SELECT id, level, grid_rows, grid_cols, moves, duration_ms, finished_at
		FROM results
	`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int64
	for rows.Next() {
		var id, durationMS int64
		var level string
		var gridRows, gridCols, moves int
		var finishedAt time.Time

		if err := rows.Scan(&id, &level, &gridRows, &gridCols, &moves, &durationMS, &finishedAt); err != nil {
			return count, err
		}

		if dryRun {
			count++
			continue
		}

		// Check if the row already exists (reruns skip copied rows)
		var existingID int64
		err := pg.QueryRow(`SELECT id FROM results WHERE id = $1`, id).Scan(&existingID)
		if err == nil {
			continue
		}

		// Insert with explicit ID to preserve ordering across stores
		_, err = pg.Exec(`
			INSERT INTO results (id, level, grid_rows, grid_cols, moves, duration_ms, finished_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, id, level, gridRows, gridCols, moves, durationMS, finishedAt)
		if err != nil {
			if !strings.Contains(err.Error(), "duplicate key") {
				return count, err
			}
		} else {
			count++
		}
	}

	// Reset the sequence to avoid ID conflicts for new records
	if !dryRun {
		_, _ = pg.Exec(`SELECT setval('results_id_seq', COALESCE((SELECT MAX(id) FROM results), 0) + 1, false)`)
	}

	return count, rows.Err()
}

func init() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Migrates recorded runs from SQLite to PostgreSQL.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -sqlite data/results.db -pg-host localhost -pg-user mazebound -pg-password mazebound -pg-database mazebound\n", os.Args[0])
	}
}
