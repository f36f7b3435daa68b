package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vowlink/wedding-invites-api/databases"
)

const jobTimeout = 30 * time.Second

// Scheduler runs the background maintenance jobs: hourly expired-session
// purge and a daily stats line.
type Scheduler struct {
	Sessions    databases.SessionDatabase
	Users       databases.UserDatabase
	Invitations databases.InvitationDatabase

	cron *cron.Cron
}

// New builds a scheduler over the given stores.
func New(sessions databases.SessionDatabase, users databases.UserDatabase, invitations databases.InvitationDatabase) *Scheduler {
	return &Scheduler{
		Sessions:    sessions,
		Users:       users,
		Invitations: invitations,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	s.cron = cron.New(cron.WithLocation(time.UTC))

	if _, err := s.cron.AddFunc("@hourly", s.PurgeExpiredSessions); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 3 * * *", s.LogDailyStats); err != nil {
		return err
	}

	s.cron.Start()
	zap.S().Info("scheduler started")
	return nil
}

// Stop halts the cron loop, letting running jobs finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// PurgeExpiredSessions deletes sessions past their expiry.
func (s *Scheduler) PurgeExpiredSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.Sessions.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		zap.S().With(err).Error("failed to purge expired sessions")
		return
	}
	if n > 0 {
		zap.S().Infow("purged expired sessions", "count", n)
	}
}

// LogDailyStats writes a daily count line for operators.
func (s *Scheduler) LogDailyStats() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	users, err := s.Users.CountDocuments(ctx)
	if err != nil {
		zap.S().With(err).Error("failed to count users")
		return
	}
	invitations, err := s.Invitations.CountDocuments(ctx)
	if err != nil {
		zap.S().With(err).Error("failed to count invitations")
		return
	}
	zap.S().Infow("daily stats",
		"users", users,
		"invitations", invitations,
	)
}
