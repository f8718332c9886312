package transfer

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/goph/emperror"
)

// Catalog mirrors the transfer history into a relational table, so
// several machines can report into one place.
type Catalog struct {
	db     *sql.DB
	schema string
}

func NewCatalog(db *sql.DB, schema string) (*Catalog, error) {
	if schema == "" {
		return nil, errors.New("no database schema configured")
	}
	return &Catalog{db: db, schema: schema}, nil
}

// Store inserts one transfer row.
func (c *Catalog) Store(entry *Entry) error {
	sqlstr := fmt.Sprintf("INSERT INTO %s.transfer(source, destination, files, size, status, message, start, end) VALUES(?, ?, ?, ?, ?, ?, ?, ?)", c.schema)
	if _, err := c.db.Exec(sqlstr,
		entry.Source,
		entry.Destination,
		entry.Files,
		entry.Size,
		entry.Status,
		entry.Message,
		entry.Start,
		entry.End); err != nil {
		return emperror.Wrapf(err, "cannot store transfer %s", sqlstr)
	}
	return nil
}

// LoadAll returns all catalogued transfers in chronological order.
func (c *Catalog) LoadAll() ([]*Entry, error) {
	sqlstr := fmt.Sprintf("SELECT source, destination, files, size, status, message, start, end FROM %s.transfer ORDER BY start", c.schema)
	rows, err := c.db.Query(sqlstr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, emperror.Wrapf(err, "cannot get transfers %s", sqlstr)
	}
	defer rows.Close()
	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.Source,
			&entry.Destination,
			&entry.Files,
			&entry.Size,
			&entry.Status,
			&entry.Message,
			&entry.Start,
			&entry.End); err != nil {
			return nil, emperror.Wrapf(err, "cannot scan transfer %s", sqlstr)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
