package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule registers the dominoes match handler with the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := initializer.RegisterMatch(MatchNameDominoes, NewMatch); err != nil {
		return err
	}

	logger.Info("Dominoes Go module loaded.")
	return nil
}
