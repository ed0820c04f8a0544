package app

import (
	"strings"

	"go-onboard/internal/department"
	"go-onboard/internal/notification"
	"go-onboard/internal/onboarding"
	"go-onboard/internal/task"
	"go-onboard/internal/user"

	"gorm.io/gorm"
)

// Migrate builds the schema and the named constraints the error mappers
// key on. AutoMigrate does not manage cross-table FKs here because the
// entities reference each other by bare uuid columns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&department.Department{},
		&user.User{},
		&task.Task{},
		&onboarding.OnboardingTask{},
		&notification.Notification{},
	); err != nil {
		return err
	}

	constraints := []string{
		`ALTER TABLE users ADD CONSTRAINT fk_users_department
			FOREIGN KEY (dept_id) REFERENCES departments(id)`,
		`ALTER TABLE tasks ADD CONSTRAINT fk_tasks_department
			FOREIGN KEY (dept_id) REFERENCES departments(id)`,
		`ALTER TABLE tasks ADD CONSTRAINT fk_tasks_supervisor
			FOREIGN KEY (supervisor_id) REFERENCES users(id)`,
		`ALTER TABLE onboarding_tasks ADD CONSTRAINT fk_onboarding_user
			FOREIGN KEY (user_id) REFERENCES users(id)`,
		`ALTER TABLE onboarding_tasks ADD CONSTRAINT fk_onboarding_task
			FOREIGN KEY (task_id) REFERENCES tasks(id)`,
	}
	for _, ddl := range constraints {
		if err := db.Exec(ddl).Error; err != nil {
			if !isDuplicateConstraint(err) {
				return err
			}
		}
	}

	outboxDDL := `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	if err := db.Exec(outboxDDL).Error; err != nil {
		return err
	}

	return db.Exec(`CREATE INDEX IF NOT EXISTS idx_outbox_status_retry
		ON outbox_events (status, next_retry_at)`).Error
}

func isDuplicateConstraint(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}
