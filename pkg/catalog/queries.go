package catalog

// Catalog queries against the SYSCAT views. Schema filtering is not done
// here: exclusion patterns are applied during normalization so the rules stay
// configurable and testable per run.

const tableQuery = `
SELECT t.TABSCHEMA, t.TABNAME,
       c.COLNAME, c.TYPENAME, c.LENGTH, c.SCALE, c.NULLS, c.DEFAULT,
       c.COLNO, c.IDENTITY, c.GENERATED
FROM SYSCAT.TABLES t
JOIN SYSCAT.COLUMNS c ON t.TABSCHEMA = c.TABSCHEMA AND t.TABNAME = c.TABNAME
WHERE t.TYPE = 'T'
ORDER BY t.TABSCHEMA, t.TABNAME, c.COLNO`

const procedureQuery = `
SELECT p.PROCSCHEMA, p.PROCNAME,
       p.LANGUAGE, p.DETERMINISTIC, p.NULLCALL,
       r.TEXT, p.RESULT_SETS,
       (SELECT COUNT(*) FROM SYSCAT.ROUTINEPARMS rp
        WHERE rp.ROUTINESCHEMA = p.PROCSCHEMA
        AND rp.ROUTINENAME = p.PROCNAME
        AND rp.SPECIFICNAME = p.SPECIFICNAME) AS PARAM_COUNT
FROM SYSCAT.PROCEDURES p
LEFT JOIN SYSCAT.ROUTINES r ON
    p.PROCSCHEMA = r.ROUTINESCHEMA AND
    p.PROCNAME = r.ROUTINENAME AND
    p.SPECIFICNAME = r.SPECIFICNAME
ORDER BY p.PROCSCHEMA, p.PROCNAME`

const triggerQuery = `
SELECT t.TRIGSCHEMA, t.TRIGNAME, t.TABSCHEMA, t.TABNAME,
       t.TRIGTIME, t.TRIGEVENT, t.GRANULARITY, t.VALID, t.ENABLED, t.TEXT
FROM SYSCAT.TRIGGERS t
ORDER BY t.TRIGSCHEMA, t.TRIGNAME`

const functionQuery = `
SELECT f.FUNCSCHEMA, f.FUNCNAME, f.RETURN_TYPE,
       r.LANGUAGE, r.DETERMINISTIC, r.NULLCALL, r.TEXT,
       (SELECT COUNT(*) FROM SYSCAT.FUNCPARMS fp
        WHERE fp.FUNCSCHEMA = f.FUNCSCHEMA
        AND fp.FUNCNAME = f.FUNCNAME
        AND fp.SPECIFICNAME = f.SPECIFICNAME) AS PARAM_COUNT
FROM SYSCAT.FUNCTIONS f
LEFT JOIN SYSCAT.ROUTINES r ON
    f.FUNCSCHEMA = r.ROUTINESCHEMA AND
    f.FUNCNAME = r.ROUTINENAME AND
    f.SPECIFICNAME = r.SPECIFICNAME
ORDER BY f.FUNCSCHEMA, f.FUNCNAME`

const viewQuery = `
SELECT v.VIEWSCHEMA, v.VIEWNAME, v.TEXT, v.VALID, v.VIEWCHECK, v.READONLY,
       t.REMARKS
FROM SYSCAT.VIEWS v
LEFT JOIN SYSCAT.TABLES t ON v.VIEWSCHEMA = t.TABSCHEMA AND v.VIEWNAME = t.TABNAME
ORDER BY v.VIEWSCHEMA, v.VIEWNAME`
