// Package notifier delivers the daily notification to Slack users.
package notifier

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	"github.com/diegoclair/slack-notify-bot/internal/domain/contract"
)

const dailyMessage = "🔔 *Daily reminder*\n\nYour daily digest is ready. Open the bot home tab to see today's events."

// Service implements contract.BatchSender on top of the Slack API, posting
// a direct message to every member of a fired cohort.
type Service struct {
	slackClient contract.SlackClient
	log         zerolog.Logger
}

func New(slackClient contract.SlackClient, log zerolog.Logger) *Service {
	return &Service{
		slackClient: slackClient,
		log:         log.With().Str("component", "notifier").Logger(),
	}
}

// SendBatch posts the daily message to each user in the batch. A failure
// for one user never stops delivery to the rest; the error summarizes how
// many deliveries failed.
func (s *Service) SendBatch(userIDs []string) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("empty notification batch")
	}

	failed := 0
	for _, userID := range userIDs {
		_, _, err := s.slackClient.PostMessage(
			userID,
			slack.MsgOptionText(dailyMessage, false),
			slack.MsgOptionAsUser(false),
		)
		if err != nil {
			failed++
			s.log.Warn().Err(err).Str("user", userID).Msg("failed to deliver notification")
			continue
		}
		s.log.Debug().Str("user", userID).Msg("notification delivered")
	}

	if failed > 0 {
		return fmt.Errorf("failed to deliver to %d of %d users", failed, len(userIDs))
	}
	return nil
}
