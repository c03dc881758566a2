package handler

import (
	"github.com/sirupsen/logrus"
	"storybot/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
