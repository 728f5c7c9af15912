package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// ErrExists is returned by Create when the target file is already present
var ErrExists = errors.New("snapshot file already exists")

// DB wraps a snapshot database connection
type DB struct {
	conn *sql.DB
}

// Create opens a fresh snapshot file. An existing file is refused unless
// overwrite is set, in which case it is replaced.
func Create(dbPath string, overwrite bool) (*DB, error) {
	if _, err := os.Stat(dbPath); err == nil {
		if !overwrite {
			return nil, fmt.Errorf("%s: %w", dbPath, ErrExists)
		}
		if err := os.Remove(dbPath); err != nil {
			return nil, fmt.Errorf("removing existing snapshot: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking snapshot path: %w", err)
	}

	db, err := open(dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return db, nil
}

// Open opens an existing snapshot file for reading
func Open(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	return open(dbPath)
}

func open(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the snapshot tables. Decimals are stored as TEXT so
// values read back exactly.
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshot (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		rooms INTEGER NOT NULL,
		rate TEXT NOT NULL,
		formula TEXT NOT NULL,
		catalog TEXT NOT NULL,
		sum_kwh TEXT NOT NULL,
		average_kwh TEXT NOT NULL,
		max_day TEXT NOT NULL,
		min_day TEXT NOT NULL,
		weekly_cost TEXT NOT NULL,
		monthly_cost TEXT NOT NULL,
		annual_cost TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS snapshot_days (
		snapshot_id TEXT NOT NULL REFERENCES snapshot(id),
		day_index INTEGER NOT NULL,
		day TEXT NOT NULL,
		base_kwh TEXT NOT NULL,
		appliance_kwh TEXT NOT NULL,
		total_kwh TEXT NOT NULL,
		cost TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, day_index)
	);
	CREATE TABLE IF NOT EXISTS snapshot_usage (
		snapshot_id TEXT NOT NULL REFERENCES snapshot(id),
		day_index INTEGER NOT NULL,
		appliance TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		PRIMARY KEY (snapshot_id, day_index, appliance)
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// WriteSnapshot stores the snapshot, its day totals and the usage table in
// one transaction
func (db *DB) WriteSnapshot(s *models.Snapshot) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	r := s.Report
	_, err = tx.Exec(`
	INSERT INTO snapshot (id, created_at, rooms, rate, formula, catalog, sum_kwh, average_kwh,
		max_day, min_day, weekly_cost, monthly_cost, annual_cost)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		s.ID.String(), s.CreatedAt.UTC().Format(time.RFC3339), s.Household.Rooms, s.Household.RatePerUnit.String(),
		s.Formula, s.Catalog.Name, r.Sum.String(), r.Average.String(),
		r.Max.Day.String(), r.Min.Day.String(), r.Cost.Weekly.String(), r.Cost.Monthly.String(), r.Cost.Annual.String(),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	for _, d := range r.Days {
		_, err := tx.Exec(`
		INSERT INTO snapshot_days (snapshot_id, day_index, day, base_kwh, appliance_kwh, total_kwh, cost)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		`, s.ID.String(), int(d.Day), d.Day.String(), d.Base.String(), d.Appliances.String(), d.Total.String(), r.DayCost(d).String())
		if err != nil {
			return fmt.Errorf("inserting %s totals: %w", d.Day, err)
		}
	}

	for _, day := range models.Days() {
		for _, key := range s.Catalog.Keys() {
			_, err := tx.Exec(`
			INSERT INTO snapshot_usage (snapshot_id, day_index, appliance, quantity)
			VALUES (?, ?, ?, ?)
			`, s.ID.String(), int(day), key, s.Week.Quantity(day, key))
			if err != nil {
				return fmt.Errorf("inserting %s usage: %w", day, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Summary is the header row of a stored snapshot
type Summary struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Rooms     int
	Rate      decimal.Decimal
	Formula   string
	Catalog   string
	Sum       decimal.Decimal
	Average   decimal.Decimal
	MaxDay    string
	MinDay    string
	Cost      models.CostProjection
}

// ListSnapshots returns the snapshot headers in the file, oldest first
func (db *DB) ListSnapshots() ([]Summary, error) {
	rows, err := db.conn.Query(`
	SELECT id, created_at, rooms, rate, formula, catalog, sum_kwh, average_kwh,
		max_day, min_day, weekly_cost, monthly_cost, annual_cost
	FROM snapshot
	ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var results []Summary
	for rows.Next() {
		var s Summary
		var id, createdAt, rate, sum, avg, weekly, monthly, annual string
		if err := rows.Scan(&id, &createdAt, &s.Rooms, &rate, &s.Formula, &s.Catalog, &sum, &avg,
			&s.MaxDay, &s.MinDay, &weekly, &monthly, &annual); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing id: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if err := parseDecimals(
			decimalField{"rate", rate, &s.Rate},
			decimalField{"sum_kwh", sum, &s.Sum},
			decimalField{"average_kwh", avg, &s.Average},
			decimalField{"weekly_cost", weekly, &s.Cost.Weekly},
			decimalField{"monthly_cost", monthly, &s.Cost.Monthly},
			decimalField{"annual_cost", annual, &s.Cost.Annual},
		); err != nil {
			return nil, err
		}
		s.Cost.Rate = s.Rate
		results = append(results, s)
	}
	return results, rows.Err()
}

// ListDays returns the stored day totals of a snapshot in Monday→Sunday order
func (db *DB) ListDays(id uuid.UUID) ([]models.DayTotal, error) {
	rows, err := db.conn.Query(`
	SELECT day_index, base_kwh, appliance_kwh, total_kwh
	FROM snapshot_days
	WHERE snapshot_id = ?
	ORDER BY day_index ASC
	`, id.String())
	if err != nil {
		return nil, fmt.Errorf("querying snapshot days: %w", err)
	}
	defer rows.Close()

	var results []models.DayTotal
	for rows.Next() {
		var idx int
		var base, appliances, total string
		if err := rows.Scan(&idx, &base, &appliances, &total); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		d := models.DayTotal{Day: models.Day(idx)}
		if d.Base, err = decimal.NewFromString(base); err != nil {
			return nil, fmt.Errorf("parsing base_kwh: %w", err)
		}
		if d.Appliances, err = decimal.NewFromString(appliances); err != nil {
			return nil, fmt.Errorf("parsing appliance_kwh: %w", err)
		}
		if d.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("parsing total_kwh: %w", err)
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

// ListUsage returns the stored usage table of a snapshot
func (db *DB) ListUsage(id uuid.UUID) (models.Week, error) {
	rows, err := db.conn.Query(`
	SELECT day_index, appliance, quantity
	FROM snapshot_usage
	WHERE snapshot_id = ?
	`, id.String())
	if err != nil {
		return models.Week{}, fmt.Errorf("querying snapshot usage: %w", err)
	}
	defer rows.Close()

	var week models.Week
	for rows.Next() {
		var idx, qty int
		var appliance string
		if err := rows.Scan(&idx, &appliance, &qty); err != nil {
			return models.Week{}, fmt.Errorf("scanning row: %w", err)
		}
		day := models.Day(idx)
		if !day.Valid() {
			return models.Week{}, fmt.Errorf("invalid day index %d", idx)
		}
		if week[day] == nil {
			week[day] = models.DailyUsage{}
		}
		week[day][appliance] = qty
	}
	return week, rows.Err()
}

type decimalField struct {
	column string
	raw    string
	dst    *decimal.Decimal
}

func parseDecimals(fields ...decimalField) error {
	for _, f := range fields {
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", f.column, err)
		}
		*f.dst = v
	}
	return nil
}
