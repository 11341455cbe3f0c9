package service

import (
	"github.com/rs/zerolog"

	"github.com/diegoclair/slack-notify-bot/internal/domain/contract"
)

type Instance struct {
	Users *userService
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, log zerolog.Logger) *Instance {
	return &Instance{
		Users: newUser(dm, slackClient, log),
	}
}
