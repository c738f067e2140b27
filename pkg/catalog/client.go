package catalog

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/ibmdb/go_ibm_db" // registers the "go_ibm_db" driver
	"github.com/pkg/errors"
)

var (
	// ErrConnectivity is returned when a database cannot be reached. This is
	// fatal for the whole comparison run.
	ErrConnectivity = errors.New("cannot reach database")

	// ErrPermission is returned when a catalog query is denied. This is fatal
	// only for the affected category.
	ErrPermission = errors.New("catalog access denied")
)

// Client is a connection to one DB2 database, scoped to reading SYSCAT
// metadata. It implements the metadata provider consumed by the runner.
type Client struct {
	db   *sql.DB
	name string
}

// Connect opens a connection to the database identified by dsn and verifies
// it with a ping. The name is a label used in errors and logs ("baseline" or
// "modified").
//
// Example:
//
//	client, err := catalog.Connect(ctx, cfg.Baseline.DSN(), "baseline")
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func Connect(ctx context.Context, dsn, name string) (*Client, error) {
	db, err := sql.Open("go_ibm_db", dsn)
	if err != nil {
		return nil, errors.Wrapf(ErrConnectivity, "%s: %v", name, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(ErrConnectivity, "%s: %v", name, err)
	}

	return &Client{db: db, name: name}, nil
}

// Name returns the label the client was opened with.
func (c *Client) Name() string { return c.name }

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// TableColumns fetches every table column row from SYSCAT, ordered by schema,
// table and column position.
func (c *Client) TableColumns(ctx context.Context) ([]TableColumnRow, error) {
	rows, err := c.query(ctx, tableQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TableColumnRow
	for rows.Next() {
		var r TableColumnRow
		if err := rows.Scan(
			&r.Schema, &r.Table, &r.Column, &r.TypeName, &r.Length, &r.Scale,
			&r.Nulls, &r.Default, &r.ColNo, &r.Identity, &r.Generated,
		); err != nil {
			return nil, errors.Wrapf(err, "%s: failed to scan table column row", c.name)
		}
		out = append(out, r)
	}
	return out, errors.Wrapf(rows.Err(), "%s: table query", c.name)
}

// Procedures fetches every stored procedure row from SYSCAT.
func (c *Client) Procedures(ctx context.Context) ([]ProcedureRow, error) {
	rows, err := c.query(ctx, procedureQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProcedureRow
	for rows.Next() {
		var r ProcedureRow
		if err := rows.Scan(
			&r.Schema, &r.Name, &r.Language, &r.Deterministic, &r.NullCall,
			&r.Text, &r.ResultSets, &r.ParamCount,
		); err != nil {
			return nil, errors.Wrapf(err, "%s: failed to scan procedure row", c.name)
		}
		out = append(out, r)
	}
	return out, errors.Wrapf(rows.Err(), "%s: procedure query", c.name)
}

// Triggers fetches every trigger row from SYSCAT.
func (c *Client) Triggers(ctx context.Context) ([]TriggerRow, error) {
	rows, err := c.query(ctx, triggerQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TriggerRow
	for rows.Next() {
		var r TriggerRow
		if err := rows.Scan(
			&r.Schema, &r.Name, &r.TableSchema, &r.TableName, &r.TrigTime,
			&r.TrigEvent, &r.Granularity, &r.Valid, &r.Enabled, &r.Text,
		); err != nil {
			return nil, errors.Wrapf(err, "%s: failed to scan trigger row", c.name)
		}
		out = append(out, r)
	}
	return out, errors.Wrapf(rows.Err(), "%s: trigger query", c.name)
}

// Functions fetches every function row from SYSCAT.
func (c *Client) Functions(ctx context.Context) ([]FunctionRow, error) {
	rows, err := c.query(ctx, functionQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FunctionRow
	for rows.Next() {
		var r FunctionRow
		if err := rows.Scan(
			&r.Schema, &r.Name, &r.ReturnType, &r.Language, &r.Deterministic,
			&r.NullCall, &r.Text, &r.ParamCount,
		); err != nil {
			return nil, errors.Wrapf(err, "%s: failed to scan function row", c.name)
		}
		out = append(out, r)
	}
	return out, errors.Wrapf(rows.Err(), "%s: function query", c.name)
}

// Views fetches every view row from SYSCAT.
func (c *Client) Views(ctx context.Context) ([]ViewRow, error) {
	rows, err := c.query(ctx, viewQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ViewRow
	for rows.Next() {
		var r ViewRow
		if err := rows.Scan(
			&r.Schema, &r.Name, &r.Text, &r.Valid, &r.CheckOption,
			&r.ReadOnly, &r.Remarks,
		); err != nil {
			return nil, errors.Wrapf(err, "%s: failed to scan view row", c.name)
		}
		out = append(out, r)
	}
	return out, errors.Wrapf(rows.Err(), "%s: view query", c.name)
}

func (c *Client) query(ctx context.Context, q string) (*sql.Rows, error) {
	rows, err := c.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.Wrapf(Classify(err), "%s", c.name)
	}
	return rows, nil
}

// Classify maps a driver error onto the error taxonomy. SQL0551 is DB2's
// authorization failure; everything else from a catalog query is treated as a
// connectivity problem.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "SQL0551") || strings.Contains(msg, "SQLSTATE=42501") {
		return errors.Wrapf(ErrPermission, "%v", err)
	}
	return errors.Wrapf(ErrConnectivity, "%v", err)
}
