package watch

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/marktriggs/globby/pkg/lister"
	"github.com/marktriggs/globby/pkg/logging"
)

type watcherParams struct {
	fx.In

	Logger     logging.Interface
	Factory    lister.Factory
	Registerer prometheus.Registerer `optional:"true"`
	Handler    SnapshotHandler       `optional:"true"`
}

var Module = fx.Provide(
	func(v *viper.Viper, params watcherParams) (*Watcher, error) {
		config, err := NewWatchConfig(
			WithViper(v),
			WithLogger(params.Logger),
		)
		if err != nil {
			return nil, fmt.Errorf("error creating watch config: %+v", err)
		}
		return NewWatcher(config, params.Factory, NewMetrics(params.Registerer), params.Handler)
	})
