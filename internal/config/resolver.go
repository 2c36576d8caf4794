package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

// Resolver builds option sets. Precedence, lowest first: defaults, the
// configuration section, RUNNERGEN_* environment variables, explicitly set
// flags. Every resolution uses a fresh viper instance so repeated calls
// never leak state into each other.
type Resolver struct {
	flags *pflag.FlagSet
}

// NewResolver returns a Resolver reading overrides from flags. flags may be
// nil, in which case only defaults, configuration and environment apply.
func NewResolver(flags *pflag.FlagSet) *Resolver {
	return &Resolver{flags: flags}
}

// Resolve loads the optional configFile and appends extraIncludes to the
// resolved includes.
func (r *Resolver) Resolve(configFile string, extraIncludes ...string) (m.Options, error) {
	var section map[string]any

	if configFile != "" {
		var err error

		section, err = LoadSection(configFile)
		if err != nil {
			return m.Options{}, err
		}
	}

	return r.resolve(section, extraIncludes)
}

// FromSource resolves options from nil (defaults), a configuration file path
// or an option mapping. Any other source is a configuration error.
func (r *Resolver) FromSource(source any) (m.Options, error) {
	switch s := source.(type) {
	case nil:
		return r.resolve(nil, nil)
	case string:
		return r.Resolve(s)
	case map[string]any:
		return r.resolve(normalizeMap(s), nil)
	default:
		return m.Options{}, runerr.New(runerr.Config, "", fmt.Sprintf("unsupported configuration source %T", source))
	}
}

func (r *Resolver) resolve(section map[string]any, extraIncludes []string) (m.Options, error) {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if section != nil {
		if err := v.MergeConfigMap(section); err != nil {
			return m.Options{}, runerr.Wrap(runerr.Config, "", "merge configuration", err)
		}
	}

	if err := r.bindFlags(v); err != nil {
		return m.Options{}, err
	}

	var opts m.Options
	if err := v.Unmarshal(&opts); err != nil {
		return m.Options{}, runerr.Wrap(runerr.Config, "", "decode options", err)
	}

	opts.Plugins = normalizePlugins(opts.Plugins)
	if r.cexceptionRequested() && !opts.HasPlugin(m.PluginCException) {
		opts.Plugins = append(opts.Plugins, m.PluginCException)
	}

	opts.Includes = append(opts.Includes, extraIncludes...)

	slog.Debug("options resolved",
		"framework", opts.Framework,
		"test_prefix", opts.TestPrefix,
		"includes", len(opts.Includes),
		"plugins", opts.Plugins)

	return opts, nil
}

func (r *Resolver) bindFlags(v *viper.Viper) error {
	if r.flags == nil {
		return nil
	}

	for _, key := range flagKeys {
		flag := r.flags.Lookup(key)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return runerr.Wrap(runerr.Config, "", "bind flag --"+key, err)
		}
	}

	return nil
}

func (r *Resolver) cexceptionRequested() bool {
	if r.flags == nil {
		return false
	}

	on, err := r.flags.GetBool(FlagCException)

	return err == nil && on
}

func normalizePlugins(plugins []string) []string {
	out := make([]string, 0, len(plugins))

	for _, plugin := range plugins {
		plugin = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(plugin), ":"))
		if plugin != "" {
			out = append(out, plugin)
		}
	}

	return out
}
