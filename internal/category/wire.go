package category

import (
	"database/sql"

	"go.uber.org/zap"
)

// NewModule returns the category service (used for startup seeding) and its
// HTTP controller.
func NewModule(db *sql.DB, logger *zap.Logger) (*Service, *Controller) {
	svc := NewService(NewMySQLRepository(db), logger)
	return svc, NewController(svc, logger)
}
