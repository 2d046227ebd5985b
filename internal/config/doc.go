// Package config manages user-level settings stored at ~/.askedit/config.yaml.
// Settings can also come from ASKEDIT_* environment variables. They supply the
// default manifest path, models directory and logging options when the
// corresponding flags are not given.
package config
