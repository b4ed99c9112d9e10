package internal

import (
	"jobtrack/tracker-api/internal/cache"
	"jobtrack/tracker-api/internal/service"
	"jobtrack/tracker-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB    *gorm.DB
	Argon *security.ArgonHash
	Cache *cache.Invalidator
	Mail  *service.Mailer
}
