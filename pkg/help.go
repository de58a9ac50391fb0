package spacetalk

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"

	"github.com/spacetalk/lambda-spacetalk/pkg/config"
)

// Help generates the environment variable help output.
func Help() string {
	rt, _ := settings.GroupFromComponent(runhttp.NewComponent())
	conf, _ := settings.GroupFromComponent(config.NewComponent())
	return settings.ExampleEnvGroups([]settings.Group{
		conf,
		&settings.SettingGroup{
			NameValue:   settingsPrefix,
			GroupValues: []settings.Group{rt},
		},
	})
}
