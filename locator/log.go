package locator

import "github.com/sirupsen/logrus"

// Logging hooks used by the library and its directory middlewares.
//
// Default to logrus; rewire these to integrate with the host app's logging.
var (
	Debugf func(pat string, args ...any) = logrus.Debugf
	Infof  func(pat string, args ...any) = logrus.Infof
	Errorf func(pat string, args ...any) = logrus.Errorf
)
