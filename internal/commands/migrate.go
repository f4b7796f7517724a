package commands

import (
	"hrms/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create type: user_role.",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('Admin', 'Manager', 'Employee');`,
	},
	{
		Index:       2,
		Description: "Create type: task_priority.",
		Query: `
        CREATE TYPE "task_priority" AS ENUM ('Low', 'Medium', 'High');`,
	},
	{
		Index:       3,
		Description: "Create type: task_status.",
		Query: `
        CREATE TYPE "task_status" AS ENUM ('Pending', 'In Progress', 'Completed');`,
	},
	{
		Index:       4,
		Description: "Create type: leave_status.",
		Query: `
        CREATE TYPE "leave_status" AS ENUM ('Pending', 'Approved', 'Rejected');`,
	},
	{
		Index:       5,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            name text not null,
            email text not null unique,
            password text not null,
            department text,
            designation text,
            phone varchar(20),
            address varchar(500),
            role user_role not null default 'Employee',
            is_active boolean not null default true,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       6,
		Description: "Seed user with email: admin@hrms.local, password: 1",
		Query: `
        INSERT INTO users(name, email, role, department, designation, password)
        SELECT 'Admin', 'admin@hrms.local', 'Admin', 'Administration', 'Administrator', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT email FROM users WHERE email = 'admin@hrms.local');
        `,
	},
	{
		Index:       7,
		Description: "Create table: tasks.",
		Query: `
        CREATE TABLE IF NOT EXISTS tasks (
            id serial primary key,
            title text not null,
            description text,
            priority task_priority not null default 'Medium',
            status task_status not null default 'Pending',
            assigned_to int not null references users(id) on delete cascade,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       8,
		Description: "Create table: leaves.",
		Query: `
        CREATE TABLE IF NOT EXISTS leaves (
            id serial primary key,
            start_date date not null,
            end_date date not null,
            reason text not null,
            status leave_status not null default 'Pending',
            requested_by int not null references users(id) on delete cascade,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       9,
		Description: "Create table: customer_measurements.",
		Query: `
        CREATE TABLE IF NOT EXISTS customer_measurements (
            id serial primary key,
            name text not null,
            code varchar(50) not null,
            phone varchar(20) not null,
            address varchar(500),
            kameezlength varchar(10),
            teera varchar(10),
            baazo varchar(10),
            chest varchar(10),
            neck varchar(10),
            daman varchar(10),
            kera varchar(20),
            shalwar varchar(10),
            pancha varchar(10),
            pocket varchar(10),
            note varchar(1000),
            created_by int references users(id) on delete set null,
            updated_by int references users(id) on delete set null,
            created_at timestamp default now(),
            updated_at timestamp,
            deleted_at timestamp
        );`,
	},
	{
		Index:       10,
		Description: "Unique measurement code among live rows.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS customer_measurements_code_live
        ON customer_measurements (code) WHERE deleted_at IS NULL;`,
	},
}

// MigrateUP applies every schema step past the recorded version, tracking
// progress (and failures) in schema_migrations.
func MigrateUP(db *postgresql.Database) error {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				return errors.Wrap(err, "creating schema_migrations")
			}
			version = 0
			dirty = false
		} else {
			return errors.Wrap(err, "reading schema_migrations")
		}
	}

	if dirty {
		for _, s := range scheme {
			if s.Index != version {
				continue
			}
			if _, err = db.Exec(s.Query); err != nil {
				if _, uErr := db.Exec(`UPDATE schema_migrations SET error = ?`, err.Error()); uErr != nil {
					return errors.Wrap(uErr, "recording migration error")
				}
				return errors.Wrapf(err, "retrying dirty migration version %d", version)
			}
			if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
				return errors.Wrap(err, "clearing dirty flag")
			}
		}
	}

	for _, s := range scheme {
		if s.Index <= version {
			continue
		}
		if _, err = db.Exec(s.Query); err != nil {
			if _, uErr := db.Exec(`UPDATE schema_migrations SET error = ?, version = ?, dirty = true`, err.Error(), s.Index); uErr != nil {
				return errors.Wrap(uErr, "recording migration error")
			}
			return errors.Wrapf(err, "applying migration version %d", s.Index)
		}
		if _, err = db.Exec(`UPDATE schema_migrations SET version = ?`, s.Index); err != nil {
			return errors.Wrap(err, "recording migration version")
		}
	}

	return nil
}
