package catalog

import "database/sql"

type (
	// TableColumnRow is one row of the joined SYSCAT.TABLES/SYSCAT.COLUMNS
	// query: a single column of a single table. A table's full definition is
	// the ordered set of its rows (by ColNo).
	TableColumnRow struct {
		Schema    sql.NullString
		Table     sql.NullString
		Column    sql.NullString
		TypeName  sql.NullString
		Length    int32
		Scale     int32
		Nulls     sql.NullString // 'Y'/'N'
		Default   sql.NullString
		ColNo     int32
		Identity  sql.NullString // 'Y'/'N'
		Generated sql.NullString // ' ', 'A' (always), 'D' (by default)
	}

	// ProcedureRow is one stored procedure from SYSCAT.PROCEDURES joined with
	// SYSCAT.ROUTINES for its body text.
	ProcedureRow struct {
		Schema        sql.NullString
		Name          sql.NullString
		Language      sql.NullString
		Deterministic sql.NullString
		NullCall      sql.NullString
		Text          sql.NullString
		ParamCount    int32
		ResultSets    int32
	}

	// TriggerRow is one trigger from SYSCAT.TRIGGERS.
	TriggerRow struct {
		Schema      sql.NullString
		Name        sql.NullString
		TableSchema sql.NullString
		TableName   sql.NullString
		TrigTime    sql.NullString
		TrigEvent   sql.NullString
		Granularity sql.NullString
		Valid       sql.NullString
		Enabled     sql.NullString
		Text        sql.NullString
	}

	// FunctionRow is one function from SYSCAT.FUNCTIONS joined with
	// SYSCAT.ROUTINES for its body text.
	FunctionRow struct {
		Schema        sql.NullString
		Name          sql.NullString
		ReturnType    sql.NullString
		Language      sql.NullString
		Deterministic sql.NullString
		NullCall      sql.NullString
		Text          sql.NullString
		ParamCount    int32
	}

	// ViewRow is one view from SYSCAT.VIEWS joined with SYSCAT.TABLES for
	// its remarks.
	ViewRow struct {
		Schema      sql.NullString
		Name        sql.NullString
		Text        sql.NullString
		Valid       sql.NullString
		CheckOption sql.NullString // 'N', 'L' (local), 'C' (cascaded)
		ReadOnly    sql.NullString
		Remarks     sql.NullString
	}
)
