package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/culiutudousi/time-reminder/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	db *sql.DB
}

func NewDatabase(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return database, nil
}

func (d *Database) initTables() error {
	// 倒计时完成记录表，时间以 unix 秒保存
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS reminder_records (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            label TEXT NOT NULL,
            minutes INTEGER NOT NULL,
            started_at INTEGER NOT NULL,
            ended_at INTEGER NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("create reminder_records: %w", err)
	}

	_, err = d.db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_reminder_records_started_at
        ON reminder_records(started_at)
    `)
	if err != nil {
		return fmt.Errorf("create reminder_records index: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) SaveReminderRecord(record *models.ReminderRecord) error {
	result, err := d.db.Exec(`
        INSERT INTO reminder_records (label, minutes, started_at, ended_at)
        VALUES (?, ?, ?, ?)
    `, record.Label, record.Minutes, record.StartedAt.Unix(), record.EndedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert reminder record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = id
	return nil
}

// GetReminderStats 按标签统计 [start, end) 内开始的记录
func (d *Database) GetReminderStats(start, end time.Time) (*models.ReminderStats, error) {
	rows, err := d.db.Query(`
        SELECT
            label,
            COUNT(*) as sessions,
            COALESCE(SUM(minutes), 0) as total_minutes
        FROM reminder_records
        WHERE started_at >= ? AND started_at < ?
        GROUP BY label
        ORDER BY label
    `, start.Unix(), end.Unix())
	if err != nil {
		return nil, fmt.Errorf("query reminder stats: %w", err)
	}
	defer rows.Close()

	stats := &models.ReminderStats{}
	for rows.Next() {
		var l models.LabelStats
		if err := rows.Scan(&l.Label, &l.Sessions, &l.Minutes); err != nil {
			return nil, err
		}
		stats.ByLabel = append(stats.ByLabel, l)
		stats.TotalSessions += l.Sessions
		stats.TotalMinutes += l.Minutes
	}
	return stats, rows.Err()
}

// GetRecentRecords 返回最近的 limit 条记录，按时间倒序
func (d *Database) GetRecentRecords(limit int) ([]*models.ReminderRecord, error) {
	rows, err := d.db.Query(`
        SELECT id, label, minutes, started_at, ended_at
        FROM reminder_records
        ORDER BY started_at DESC, id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("query reminder records: %w", err)
	}
	defer rows.Close()

	var records []*models.ReminderRecord
	for rows.Next() {
		var started, ended int64
		record := &models.ReminderRecord{}
		if err := rows.Scan(&record.ID, &record.Label, &record.Minutes, &started, &ended); err != nil {
			return nil, err
		}
		record.StartedAt = time.Unix(started, 0)
		record.EndedAt = time.Unix(ended, 0)
		records = append(records, record)
	}
	return records, rows.Err()
}
