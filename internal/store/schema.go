package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id          TEXT PRIMARY KEY,
    created_at      TEXT NOT NULL,
    source          TEXT NOT NULL,
    people_count    INTEGER NOT NULL,
    products_count  INTEGER NOT NULL,
    record_count    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS suggestions (
    run_id          TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    position        INTEGER NOT NULL,
    client_name     TEXT NOT NULL,
    scenario        TEXT NOT NULL,
    product_name    TEXT NOT NULL,
    monthly_effort  TEXT NOT NULL,
    net_amount      TEXT NOT NULL,
    goal_reached    INTEGER NOT NULL,
    indicators      TEXT NOT NULL,
    PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
