package modkit

import (
	"paysystem/internal/modkit/repokit"
	"paysystem/internal/platform/config"
	"paysystem/internal/platform/logger"
	"paysystem/internal/platform/store"
)

// Deps holds the process wide dependencies handed to every module
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	// CH is nil when no clickhouse DSN was configured
	CH store.Clickhouse
}

// DepsFrom builds Deps out of an opened store
func DepsFrom(s *store.Store, cfg config.Conf) Deps {
	return Deps{Log: s.Log, Cfg: cfg, PG: s.PG, CH: s.CH}
}

// HasClickhouse reports whether the columnar backend is available
func (d Deps) HasClickhouse() bool { return d.CH != nil }
