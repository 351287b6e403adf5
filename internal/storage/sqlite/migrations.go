package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: parent tables must be created BEFORE the tables referencing them.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    settled INTEGER NOT NULL DEFAULT 0,
    checkout_confirming INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    version INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS group_members (
    group_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    display_name TEXT NOT NULL,
    joined_at INTEGER NOT NULL,
    position INTEGER NOT NULL,
    checkout_confirmed INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (group_id, user_id),
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS rounds (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    number INTEGER NOT NULL,
    kind TEXT NOT NULL,
    status TEXT NOT NULL,
    created_by TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    closed_at INTEGER NOT NULL DEFAULT 0,
    version INTEGER NOT NULL DEFAULT 1,
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS round_confirmations (
    round_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    confirmed INTEGER NOT NULL,
    PRIMARY KEY (round_id, user_id),
    FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS round_items (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    round_id TEXT NOT NULL,
    creator_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price INTEGER NOT NULL,
    quantity INTEGER NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    deleted INTEGER NOT NULL DEFAULT 0,
    menu_item_id TEXT NOT NULL DEFAULT '',
    orderer_name TEXT NOT NULL DEFAULT '',
    shared INTEGER NOT NULL DEFAULT 0,
    share_mode TEXT NOT NULL DEFAULT '',
    share_status TEXT NOT NULL DEFAULT '',
    allow_self_join INTEGER NOT NULL DEFAULT 0,
    allow_claim_units INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    version INTEGER NOT NULL DEFAULT 1,
    FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS round_item_shares (
    item_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    participant_id TEXT NOT NULL,
    weight INTEGER NOT NULL DEFAULT 0,
    units INTEGER NOT NULL DEFAULT 0,
    amount INTEGER,
    PRIMARY KEY (item_id, participant_id),
    FOREIGN KEY (item_id) REFERENCES round_items(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS menu_items (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price INTEGER NOT NULL,
    status TEXT NOT NULL,
    created_by TEXT NOT NULL,
    updated_by TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS restaurant_menus (
    id TEXT PRIMARY KEY,
    source_group_id TEXT NOT NULL,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS restaurant_menu_items (
    menu_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    price INTEGER NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (menu_id, position),
    FOREIGN KEY (menu_id) REFERENCES restaurant_menus(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS user_menu_links (
    user_id TEXT NOT NULL,
    menu_id TEXT NOT NULL,
    label TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    last_used_at INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (user_id, menu_id),
    FOREIGN KEY (menu_id) REFERENCES restaurant_menus(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_group_members_user_id ON group_members(user_id);
CREATE INDEX IF NOT EXISTS idx_rounds_group_id ON rounds(group_id);
CREATE INDEX IF NOT EXISTS idx_round_items_round_id ON round_items(round_id);
CREATE INDEX IF NOT EXISTS idx_round_items_group_id ON round_items(group_id);
CREATE INDEX IF NOT EXISTS idx_menu_items_group_id ON menu_items(group_id);
CREATE INDEX IF NOT EXISTS idx_restaurant_menus_source ON restaurant_menus(source_group_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
