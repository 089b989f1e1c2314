// Package repomanager vends repositories bound to a DBTX, so the same code
// runs against *sql.DB or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/nutritrack/internal/dbx"
	"github.com/dmitrijs2005/nutritrack/internal/server/repositories/meals"
	"github.com/dmitrijs2005/nutritrack/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/nutritrack/internal/server/repositories/users"
	"github.com/dmitrijs2005/nutritrack/internal/server/repositories/workouts"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Meals(db dbx.DBTX) meals.Repository
	Workouts(db dbx.DBTX) workouts.Repository
}
