package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/hello-users-api/config"
	"github.com/oksasatya/hello-users-api/internal/infrastructure/sqlite"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger
	store  *sqlite.Store
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetStore(s *sqlite.Store)   { store = s }
func GetStore() *sqlite.Store    { return store }
