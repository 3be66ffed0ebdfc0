// Package history is an optional match-history recorder: when a MySQL DSN
// is configured, each Record call persists one row (the CLI records one
// row per comparative-mode result group; competition mode records none). The
// Prepare/Exec/Check shape mirrors a typical database/sql driver wrapper;
// Recorder is kept nil-able so a run with no DSN configured never dials
// out, and is constructed explicitly by the caller rather than held as a
// package-level global connection.
package history

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"

	"tanksim/internal/utils"
)

// Recorder persists finished GameResults to a MySQL table. A nil *Recorder
// is valid and Record becomes a no-op, so callers do not need to branch on
// whether history was configured.
type Recorder struct {
	db *sql.DB
}

// Open dials the database at dsn and ensures the match_history table
// exists. Pass an empty dsn to get a nil Recorder (history disabled).
func Open(dsn string) (*Recorder, *utils.Error) {
	if dsn == "" {
		return nil, nil
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, utils.NewErrFromError("history.Recorder", 1, err)
	}
	const ddl = `CREATE TABLE IF NOT EXISTS match_history (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_id VARCHAR(36) NOT NULL,
		map_description VARCHAR(255) NOT NULL,
		algorithm1 VARCHAR(255) NOT NULL,
		algorithm2 VARCHAR(255) NOT NULL,
		winner TINYINT NOT NULL,
		reason VARCHAR(32) NOT NULL,
		rounds INT NOT NULL,
		recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, utils.NewErrFromError("history.Recorder", 2, err)
	}
	return &Recorder{db: db}, nil
}

// Record inserts one finished battle's outcome. Errors degrade to a logged
// warning
// since a missing history row never invalidates a run's own result output.
func (r *Recorder) Record(runID, mapDescription, algo1, algo2, reason string, winner, rounds int) {
	if r == nil {
		return
	}
	utils.Assert(r.db)
	stmt, err := r.db.Prepare("INSERT INTO match_history " +
		"(run_id, map_description, algorithm1, algorithm2, winner, reason, rounds) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err == nil {
		_, err = stmt.Exec(runID, mapDescription, algo1, algo2, winner, reason, rounds)
		utils.Check(stmt.Close())
	}
	utils.Check(err)
}

// Close releases the underlying connection pool. A nil Recorder is a no-op.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	utils.Check(r.db.Close())
}
