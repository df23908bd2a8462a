package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch reloads the configuration whenever the config file changes and hands the
// result to onChange. It returns false when no config file is in use.
func Watch(configPath string, onChange func(*Config, error)) (bool, error) {
	v, err := newViper(configPath)
	if err != nil {
		return false, err
	}
	if v.ConfigFileUsed() == "" {
		return false, nil
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		logrus.Infof("Config: %s changed, reloading", e.Name)
		cfg, err := decode(v)
		if err != nil {
			logrus.Warnf("Config: reload failed: %v", err)
		}
		onChange(cfg, err)
	})
	v.WatchConfig()

	logrus.Debugf("Config: watching %s", v.ConfigFileUsed())
	return true, nil
}
