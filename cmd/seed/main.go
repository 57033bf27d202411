// Command seed creates demo users and a couple of finished sessions
// so /leaderboard has non-empty data when the service is demoed.
// This service has no admin/auth surface to gate an implicit
// bootstrap-on-start behind, so seeding is an explicit,
// operator-invoked command instead.
package main

import (
	"context"
	"fmt"
	"os"

	"gridgame/internal/config"
	"gridgame/internal/engine"
	"gridgame/internal/model"
	"gridgame/internal/repo"
	"gridgame/internal/store"
	"gridgame/pkg/logger"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "seed",
		Usage: "seed demo users and finished sessions for the leaderboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config.LoadConfig(cmd.String("config"))
			logger.InitLogger(config.GlobalConfig.Server.Mode)
			defer logger.Log.Sync()

			repo.InitDB()
			repo.InitRedis()

			s := store.New(repo.DB, repo.RDB)
			eng := engine.New(s)

			return seed(ctx, eng)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// seed plays out a tic_tac_toe diagonal win and a connect_four
// vertical win so both metrics of /leaderboard have at least one
// entry.
func seed(ctx context.Context, eng *engine.Engine) error {
	u1, err := eng.CreateUser(ctx, "Alice", "🐱")
	if err != nil {
		return fmt.Errorf("seed alice: %w", err)
	}
	u2, err := eng.CreateUser(ctx, "Bob", "🐶")
	if err != nil {
		return fmt.Errorf("seed bob: %w", err)
	}

	if err := seedTicTacToeWin(ctx, eng, u1.ID, u2.ID); err != nil {
		return fmt.Errorf("seed tic_tac_toe session: %w", err)
	}
	if err := seedConnectFourWin(ctx, eng, u1.ID, u2.ID); err != nil {
		return fmt.Errorf("seed connect_four session: %w", err)
	}

	logger.Log.Info("seed complete")
	return nil
}

func seedTicTacToeWin(ctx context.Context, eng *engine.Engine, hostID, guestID string) error {
	sess, err := eng.CreateSession(ctx, engine.CreateSessionInput{
		HostID:   hostID,
		GameType: model.GameTicTacToe,
	})
	if err != nil {
		return err
	}
	if _, err := eng.JoinSession(ctx, sess.ID, guestID); err != nil {
		return err
	}

	moves := []struct {
		playerID  string
		row, col int
	}{
		{hostID, 0, 0}, {guestID, 0, 1},
		{hostID, 1, 1}, {guestID, 0, 2},
		{hostID, 2, 2},
	}
	for _, m := range moves {
		if _, err := eng.SubmitMove(ctx, sess.ID, m.playerID, m.row, m.col); err != nil {
			return err
		}
	}
	return nil
}

func seedConnectFourWin(ctx context.Context, eng *engine.Engine, hostID, guestID string) error {
	sess, err := eng.CreateSession(ctx, engine.CreateSessionInput{
		HostID:   hostID,
		GameType: model.GameConnectFour,
	})
	if err != nil {
		return err
	}
	if _, err := eng.JoinSession(ctx, sess.ID, guestID); err != nil {
		return err
	}

	moves := []struct {
		playerID string
		col      int
	}{
		{hostID, 3}, {guestID, 4},
		{hostID, 3}, {guestID, 4},
		{hostID, 3}, {guestID, 4},
		{hostID, 3},
	}
	for _, m := range moves {
		if _, err := eng.SubmitMove(ctx, sess.ID, m.playerID, 0, m.col); err != nil {
			return err
		}
	}
	return nil
}
